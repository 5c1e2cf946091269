// Package async provides a small generic Future for running independent work
// concurrently.
//
// # Usage
//
//	low := async.Async(ctx, qrcode.Low, render)
//	high := async.Async(ctx, qrcode.Highest, render)
//
//	codes, err := async.WaitAll(low, high)
//	if err != nil {
//		return err // every failure, joined
//	}
//
// Using timeout:
//
//	code, err := future.AwaitWithTimeout(2 * time.Second)
//	if errors.Is(err, async.ErrTimeout) {
//		log.Println("rendering timed out")
//	}
//
// # Context Support
//
// If the context is canceled before the function starts, the function is not
// called and the future fails with the context's error. Functions receive the
// context and should observe it themselves once running.
//
// # Concurrency Safety
//
// Each Async call spawns exactly one goroutine. A future's value and error are
// written once before its done channel closes, so any number of goroutines may
// Await the same future.
package async
