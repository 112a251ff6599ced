package main

// General API documentation for swaggo. Run `swag init` to generate docs.
//
// @title           primed API
// @version         1.0
// @description     HTTP API for prime counting and nth-prime lookup.
//
// @contact.name   primed maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
