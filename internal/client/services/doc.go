// Package services holds the client's use cases on top of the API client:
// signing up and in, browsing and editing posts, and reading and writing
// comment threads. Forms are validated here before anything is sent.
//
// Filtering of post lists (published only, own posts, search) happens on the
// client and is presentation only; the server enforces who may see and edit
// what.
package services
