// Package render draws prime spirals and pattern charts, and encodes angle
// sweeps as animations.
//
// 🚀 Frames
//
//	A frame shows the spiral polyline (blue) through every vertex and, when
//	FrameOptions.Rays is set, a red ray from the origin to every vertex after
//	the first. The view box is the path's bounding box padded by
//	FrameOptions.Margin model units, scaled with equal aspect and centred;
//	axes are hidden. The title reads "Turn Angle: <a> degrees".
//
// ✨ Backends
//
//	Drawing goes through the Canvas interface. SVGCanvas streams SVG
//	elements to an io.Writer; RasterCanvas fills an *image.RGBA with
//	anti-aliased strokes (golang.org/x/image/vector) and basicfont text.
//	WriteSVG, WritePNG and Rasterize wrap DrawFrame for the common cases.
//
// ⚙️ Animation
//
//	NewFrameSeq enumerates one Path per sweep angle lazily; Animate draws
//	each into a reused RasterCanvas and hands it to an Encoder:
//
//	  GIFEncoder    – image/gif, Plan9 palette, loops forever
//	  FFmpegEncoder – pipes PNG frames to `ffmpeg -f image2pipe` (MP4/H.264)
//
//	Every frame is rescaled to its own bounds, so the animation never clips.
//
// 📈 Pattern chart
//
//	DrawChart plots angle against the mean points-per-curve of every
//	classification, with circle markers, a grid and labelled axes.
package render
