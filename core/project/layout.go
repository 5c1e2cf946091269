package project

import (
	"fmt"
	"path"
	"strings"
)

// File names inside a project directory.
const (
	URLDir         = "url"
	ImgDir         = "img"
	URLFile        = "url.txt"
	GitHubURLFile  = "url_github.txt"
	QRCodeFile     = "qr_code.png"
	QRSmallestFile = "qr_smallest.png"
	QRReliableFile = "qr_reliable.png"
)

// Layout locates the files of one project:
//
//	<name>/url/url.txt         data URL of the game
//	<name>/url/url_github.txt  hosted URL of the game
//	<name>/img/qr_code.png     QR code of url.txt
//	<name>/img/qr_smallest.png QR code of url_github.txt, level L
//	<name>/img/qr_reliable.png QR code of url_github.txt, level H
type Layout struct {
	Name string
}

// NewLayout validates name, which must be a single path element.
func NewLayout(name string) (Layout, error) {
	name = strings.TrimSuffix(strings.TrimSpace(name), "/")
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return Layout{}, fmt.Errorf("%w: %q", ErrInvalidProjectName, name)
	}
	return Layout{Name: name}, nil
}

func (l Layout) URL() string        { return path.Join(l.Name, URLDir, URLFile) }
func (l Layout) GitHubURL() string  { return path.Join(l.Name, URLDir, GitHubURLFile) }
func (l Layout) QRCode() string     { return path.Join(l.Name, ImgDir, QRCodeFile) }
func (l Layout) QRSmallest() string { return path.Join(l.Name, ImgDir, QRSmallestFile) }
func (l Layout) QRReliable() string { return path.Join(l.Name, ImgDir, QRReliableFile) }
