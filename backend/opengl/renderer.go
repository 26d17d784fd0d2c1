// Package opengl provides an OpenGL 4.1 backend for the widgets package:
// a DrawList renderer, GLFW event translation and platform hooks.
package opengl

import (
	"errors"
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/widgets"
)

// Renderer draws widgets.DrawList batches with OpenGL and uploads font
// atlases (it implements widgets.TextureUploader).
type Renderer struct {
	shader       uint32
	vao, vbo     uint32
	ebo          uint32
	projLoc      int32
	texLoc       int32
	useTexLoc    int32
	isRGBATexLoc int32 // Uniform for RGBA vs alpha-only texture mode
	width        int
	height       int
	scaleX       float32
	scaleY       float32

	// Track which textures are RGBA (vs alpha-only)
	rgbaTextures map[uint32]bool
}

// Vertex shader source
const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

out vec2 TexCoord;
out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
}
` + "\x00"

// Fragment shader source
// Supports two texture modes:
// - Alpha-only (R-channel): font atlases
// - RGBA: images registered through UploadRGBA
const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D fontTexture;
uniform bool useTexture;
uniform bool isRGBATexture;

void main() {
    if (useTexture) {
        vec4 texColor = texture(fontTexture, TexCoord);
        if (isRGBATexture) {
            // RGBA image: texture color modulated by vertex color
            FragColor = texColor * Color;
        } else {
            // Alpha-only atlas: R channel is coverage, vertex color for RGB
            FragColor = vec4(Color.rgb, Color.a * texColor.r);
        }
    } else {
        FragColor = Color;
    }
}
` + "\x00"

// NewRenderer creates a renderer for a framebuffer of the given size. A GL
// context must be current.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{
		width:        width,
		height:       height,
		scaleX:       1,
		scaleY:       1,
		rgbaTextures: make(map[uint32]bool),
	}

	// Create shader program
	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	// Get uniform locations
	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("fontTexture\x00"))
	r.useTexLoc = gl.GetUniformLocation(r.shader, gl.Str("useTexture\x00"))
	r.isRGBATexLoc = gl.GetUniformLocation(r.shader, gl.Str("isRGBATexture\x00"))

	// Create VAO
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	// Create VBO
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	// Create EBO
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// Vertex layout: Pos (2 floats) + TexCoord (2 floats) + Color (1 uint32)
	stride := int32(unsafe.Sizeof(widgets.Vertex{}))

	// Position attribute
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// TexCoord attribute
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(widgets.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)

	// Color attribute (normalized uint8x4)
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(widgets.Vertex{}.Color))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	return r, nil
}

// errEmptyImage is returned when uploading an image with no pixels.
var errEmptyImage = errors.New("opengl: empty image")

// UploadAlpha uploads a coverage image into the R channel of a texture.
// A non-zero existing ID is reused, so a growing font atlas keeps its ID.
func (r *Renderer) UploadAlpha(existing uint32, img *image.Alpha) (uint32, error) {
	if img == nil || img.Rect.Empty() {
		return 0, errEmptyImage
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	pix := img.Pix
	if img.Stride != w {
		pix = make([]byte, w*h)
		for y := 0; y < h; y++ {
			copy(pix[y*w:(y+1)*w], img.Pix[y*img.Stride:y*img.Stride+w])
		}
	}
	tex := r.bindTexture(existing, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(w), int32(h), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	delete(r.rgbaTextures, tex)
	return tex, nil
}

// UploadRGBA uploads a color image and registers it as RGBA.
func (r *Renderer) UploadRGBA(existing uint32, img *image.NRGBA) (uint32, error) {
	if img == nil || img.Rect.Empty() {
		return 0, errEmptyImage
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	pix := img.Pix
	if img.Stride != w*4 {
		pix = make([]byte, w*h*4)
		for y := 0; y < h; y++ {
			copy(pix[y*w*4:(y+1)*w*4], img.Pix[y*img.Stride:y*img.Stride+w*4])
		}
	}
	tex := r.bindTexture(existing, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	r.RegisterRGBATexture(tex)
	return tex, nil
}

// bindTexture binds existing, or a fresh texture when it is 0.
func (r *Renderer) bindTexture(existing uint32, filter int32) uint32 {
	tex := existing
	if tex == 0 {
		gl.GenTextures(1, &tex)
	}
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return tex
}

// DeleteTexture frees a texture created by an upload.
func (r *Renderer) DeleteTexture(tex uint32) {
	if tex == 0 {
		return
	}
	r.UnregisterRGBATexture(tex)
	gl.DeleteTextures(1, &tex)
}

// RegisterRGBATexture marks a texture as RGBA (vs alpha-only).
// RGBA textures use all four channels for color, while alpha-only textures
// use just the R channel for alpha (tinted by vertex color).
func (r *Renderer) RegisterRGBATexture(textureID uint32) {
	r.rgbaTextures[textureID] = true
}

// UnregisterRGBATexture removes a texture from the RGBA tracking.
func (r *Renderer) UnregisterRGBATexture(textureID uint32) {
	delete(r.rgbaTextures, textureID)
}

// Resize updates the logical (window) size the draw list is laid out in.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// SetFramebufferScale sets the framebuffer pixels per window unit, so clip
// rects land on the right pixels on HiDPI displays. Non-positive values
// reset it to 1.
func (r *Renderer) SetFramebufferScale(sx, sy float32) {
	if sx <= 0 || sy <= 0 {
		sx, sy = 1, 1
	}
	r.scaleX, r.scaleY = sx, sy
}

// glState is the GL state Render changes and puts back.
type glState struct {
	program                         int32
	blendSrc, blendDst              int32
	scissorBox                      [4]int32
	blend, depth, cull, scissorTest bool
}

func saveGLState() glState {
	var st glState
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &st.program)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &st.blendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &st.blendDst)
	gl.GetIntegerv(gl.SCISSOR_BOX, &st.scissorBox[0])
	st.blend = gl.IsEnabled(gl.BLEND)
	st.depth = gl.IsEnabled(gl.DEPTH_TEST)
	st.cull = gl.IsEnabled(gl.CULL_FACE)
	st.scissorTest = gl.IsEnabled(gl.SCISSOR_TEST)
	return st
}

func (st glState) restore() {
	gl.UseProgram(uint32(st.program))
	gl.BlendFunc(uint32(st.blendSrc), uint32(st.blendDst))
	setCap(gl.BLEND, st.blend)
	setCap(gl.DEPTH_TEST, st.depth)
	setCap(gl.CULL_FACE, st.cull)
	setCap(gl.SCISSOR_TEST, st.scissorTest)
	gl.Scissor(st.scissorBox[0], st.scissorBox[1], st.scissorBox[2], st.scissorBox[3])
}

func setCap(c uint32, on bool) {
	if on {
		gl.Enable(c)
	} else {
		gl.Disable(c)
	}
}

// scissorFor converts a draw command clip rect (x1, y1, x2, y2 in window
// units, origin top-left) into a GL scissor box (origin bottom-left, in
// framebuffer pixels). ok is false when nothing of the rect is on screen.
func scissorFor(clip [4]float32, height int, sx, sy float32) (x, y, w, h int32, ok bool) {
	fbH := float32(height) * sy
	x1 := max(clip[0]*sx, 0)
	y1 := max(fbH-clip[3]*sy, 0)
	x2 := clip[2] * sx
	y2 := fbH - clip[1]*sy
	if x2 <= x1 || y2 <= y1 {
		return 0, 0, 0, 0, false
	}
	return int32(x1), int32(y1), int32(x2 - x1), int32(y2 - y1), true
}

// Render finalizes dl and draws it over the whole framebuffer.
func (r *Renderer) Render(dl *widgets.DrawList) error {
	if dl == nil || len(dl.VtxBuffer) == 0 {
		return nil
	}
	dl.Finalize()

	saved := saveGLState()
	defer saved.restore()

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.shader)
	proj := orthoMatrix(0, float32(r.width), float32(r.height), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.texLoc, 0)

	gl.BindVertexArray(r.vao)
	defer gl.BindVertexArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(unsafe.Sizeof(widgets.Vertex{})),
		gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*2,
		gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

	for _, cmd := range dl.CmdBuffer {
		x, y, w, h, ok := scissorFor(cmd.ClipRect, r.height, r.scaleX, r.scaleY)
		if cmd.ElemCount == 0 || !ok {
			continue
		}
		gl.Scissor(x, y, w, h)
		r.bindCommandTexture(cmd.TextureID)

		// Indices are relative to the command's first vertex.
		gl.DrawElementsBaseVertexWithOffset(
			gl.TRIANGLES,
			int32(cmd.ElemCount),
			gl.UNSIGNED_SHORT,
			uintptr(cmd.IndexOffset)*2,
			int32(cmd.VertexOffset),
		)
	}
	return nil
}

// bindCommandTexture selects the shader path for a command's texture.
func (r *Renderer) bindCommandTexture(tex uint32) {
	if tex == 0 {
		gl.Uniform1i(r.useTexLoc, 0)
		gl.Uniform1i(r.isRGBATexLoc, 0)
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.Uniform1i(r.useTexLoc, 1)
	rgba := int32(0)
	if r.rgbaTextures[tex] {
		rgba = 1
	}
	gl.Uniform1i(r.isRGBATexLoc, rgba)
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	for tex := range r.rgbaTextures {
		gl.DeleteTextures(1, &tex)
	}
	clear(r.rgbaTextures)
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", string(log))
	}
	return program, nil
}

func compileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile: %s", string(log))
	}
	return shader, nil
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
