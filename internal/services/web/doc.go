// Package web composes the public schedule and changelog HTTP server from
// feature modules. Modules own their routes; the server owns mounting,
// shared middleware, static assets, and the health endpoint.
package web
