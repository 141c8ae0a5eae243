// Package scaffold turns an empty or overwritable directory into a new
// GreyCode.js project. Scaffolder.Run drives the pipeline: resolve the
// destination, fetch the template, interview the operator, rewrite
// package.json, seed .env, optionally install dependencies, and report the
// next steps. Every collaborator (fetcher, prompter, package manager) is
// injected so the pipeline runs without network or subprocess access in
// tests.
package scaffold
