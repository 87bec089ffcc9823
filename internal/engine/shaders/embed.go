// Package shaders embeds the GLSL sources.
package shaders

import _ "embed"

// GlobeVertexShader transforms and lights the sphere.
//
//go:embed globe.vert
var GlobeVertexShader string

// GlobeFragmentShader modulates the lit colour with the globe texture.
//
//go:embed globe.frag
var GlobeFragmentShader string

// OverlayVertexShader places 2D pixel-space quads.
//
//go:embed overlay.vert
var OverlayVertexShader string

// OverlayFragmentShader outputs the vertex colour.
//
//go:embed overlay.frag
var OverlayFragmentShader string
