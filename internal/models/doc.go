// Package models defines the record types exchanged with the BookMatch
// backend and held in view state.
//
// Every endpoint payload has an explicit type here; untyped maps never
// cross the api package boundary. Book identity is the stable
// GoogleBookID; BookID is a local database identifier assigned once the
// backend has persisted the book, and may be absent.
package models
