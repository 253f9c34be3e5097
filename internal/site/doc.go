// Package site orchestrates the build: it discovers documents under the
// input root, drives each one through the extract/render/resolve/compose
// pipeline, and maintains the output tree (cleanup, static assets, composed
// pages).
package site
