// Package project turns game pages into data URLs, loader pages and QR codes,
// following a fixed directory layout per game:
//
//	<root>/<name>/url/url.txt
//	<root>/<name>/url/url_github.txt
//	<root>/<name>/img/qr_code.png
//	<root>/<name>/img/qr_smallest.png
//	<root>/<name>/img/qr_reliable.png
//
// All file access goes through a storage.Storage, so a Service works the same
// on a local directory or any other backend.
//
// Basic usage:
//
//	svc := project.NewFromConfig(cfg, project.WithLogger(log))
//
//	if _, err := svc.Encode(ctx, "lights_out/index.html", "lights_out/url/url.txt"); err != nil {
//		return err
//	}
//	if _, err := svc.GenerateQR(ctx, "lights_out"); err != nil {
//		return err
//	}
//
// GenerateAll and GenerateAllPairs process several projects at once, bounded by
// WithConcurrency. The first failure cancels the rest.
package project
