// Package api exposes operating system classification over HTTP.
//
// Every /v1 response uses the same JSON envelope:
//
//	{"data": ..., "error": {"code": "...", "message": "..."}, "meta": {"request_id": "..."}}
//
// Exactly one of data and error is present. Routes:
//
//	GET  /health                 liveness probe
//	GET  /v1/os/current          classification of the host
//	GET  /v1/os/classify         classify ?name=&version=&arch=
//	POST /v1/os/classify         classify {"items": [...]} in one call
//	GET  /v1/os/useragent        classify ?ua= or the request User-Agent
//	GET  /v1/os/rules            every rule table
//	GET  /v1/os/rules/{family}   one family's rule table
package api
