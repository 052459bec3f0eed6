// Package session tracks who is signed in.
//
// A Store owns the current user and drives the persisted bearer token
// through its lifecycle:
//
//	anonymous --Login / start with token--> authenticating
//	authenticating --profile ok--> authenticated
//	authenticating --profile failed--> anonymous
//	authenticated --Logout / Expire--> anonymous
//
// One Store is created at start-up and handed to every view that needs it.
package session
