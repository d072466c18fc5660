// package repositories provides sqlite persistence for client-side state.
//
// Two stores back the application: the session row holding the bearer
// token and username across process restarts, and a book cache keyed by
// the stable Google Books identifier.
package repositories
