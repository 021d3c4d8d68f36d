// Package view holds the view-models the controllers produce and the
// functions that render them to a terminal. Controllers never format
// output themselves; they describe what is on screen and Render* draws it.
package view
