// Package display draws the live state onto a small monochrome panel.
//
// The screen is laid out for a 128x64 panel: a row of input cells at the
// top, the current profile badge and name in the middle and the output
// layout at the bottom. Panels are anything implementing drivers.Displayer
// with a clearable buffer: the SSD1306 driver on hardware and Framebuffer
// on the host.
package display
