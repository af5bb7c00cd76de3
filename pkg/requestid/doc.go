// Package requestid tags every BFF request with an identifier and forwards it
// to the backend API, so a single id follows a call through both services'
// logs.
//
// Middleware reads X-Request-ID from the incoming request or generates a UUID,
// echoes it in the response and stores it in the context. Transport copies it
// onto outgoing requests, and LoggerExtractor adds it to every log record made
// with a request context.
package requestid
