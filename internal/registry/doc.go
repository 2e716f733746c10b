// Package registry provides the central "glue" for the module system.
//
// The Registry maps the component kinds named in configuration (for
// example "http_client") to the compiled Go code that constructs them:
// an input struct decoded from the `arguments` block and a Create
// function that receives the decoded input plus injected dependencies.
//
// During application startup, the registry is populated by modules and then
// validated so that a broken kind surfaces before any component is built.
package registry
