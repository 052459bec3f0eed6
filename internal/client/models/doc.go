// Package models holds the data exchanged with the blog API: users, posts,
// comments, and the forms used to create them.
//
// Identifiers are opaque. The API may send them as JSON strings or numbers,
// and some resources use "_id" instead of "id"; decoding accepts both.
package models
