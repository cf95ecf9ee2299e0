// Package dashboard serves the degree progression dashboard API.
//
// GET returns the course progress of the logged-in user: the next deadline, the scores of
// a random module, per-year module scores and averages, module completion and the data
// of the score update form. POST accepts two actions, logout=true and
// update=true&assignment=<id>&score=<n>; anything else is answered with the Error
// outcome and HTTP 400.
//
// Storage is implemented by internal/storage/postgres.
package dashboard
