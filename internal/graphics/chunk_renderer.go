package graphics

import (
	"github.com/deltasampler/block-world/internal/meshing"
	"github.com/deltasampler/block-world/internal/profiling"
	"github.com/deltasampler/block-world/internal/world"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Lighting holds the chunk shader's light parameters.
type Lighting struct {
	Direction mgl32.Vec3
	Color     mgl32.Vec3
	Ambient   float32
}

// DefaultLighting is a white light from (1,1,1) with 0.3 ambient.
func DefaultLighting() Lighting {
	return Lighting{
		Direction: mgl32.Vec3{1, 1, 1},
		Color:     mgl32.Vec3{1, 1, 1},
		Ambient:   0.3,
	}
}

type chunkBuffers struct {
	vao, vbo, ibo uint32
	indexCount    int32
	// world-space bounds for frustum culling
	min, max mgl32.Vec3
}

func (b *chunkBuffers) delete() {
	gl.DeleteVertexArrays(1, &b.vao)
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteBuffers(1, &b.ibo)
}

// ChunkRenderer owns one VAO/VBO/IBO per chunk mesh and draws them with the
// chunk shader. It must be used on the goroutine that owns the GL context.
type ChunkRenderer struct {
	shader    *Shader
	atlas     uint32
	voxelSize float32
	lighting  Lighting
	chunks    map[world.ChunkCoord]*chunkBuffers
}

// NewChunkRenderer compiles the chunk shader and binds the atlas texture to it.
func NewChunkRenderer(atlasTexture uint32, voxelSize float32) (*ChunkRenderer, error) {
	shader, err := NewChunkShader()
	if err != nil {
		return nil, err
	}
	return &ChunkRenderer{
		shader:    shader,
		atlas:     atlasTexture,
		voxelSize: voxelSize,
		lighting:  DefaultLighting(),
		chunks:    make(map[world.ChunkCoord]*chunkBuffers),
	}, nil
}

// SetLighting replaces the light parameters.
func (r *ChunkRenderer) SetLighting(l Lighting) {
	r.lighting = l
}

// Upload replaces the GPU buffers of coord with mesh. An empty mesh only
// releases the old buffers.
func (r *ChunkRenderer) Upload(coord world.ChunkCoord, mesh *meshing.Mesh) {
	r.Release(coord)
	if mesh == nil || mesh.Empty() {
		return
	}

	b := &chunkBuffers{indexCount: int32(len(mesh.Indices))}
	anchor := world.ChunkAnchor(coord, r.voxelSize)
	half := world.ChunkScale(r.voxelSize) / 2
	ext := mgl32.Vec3{half, half, half}
	b.min, b.max = anchor.Sub(ext), anchor.Add(ext)

	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.GenBuffers(1, &b.ibo)

	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*4, gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	stride := int32(meshing.VertexStride * 4)
	// position
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	// normal
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	// uv
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(6*4))

	gl.BindVertexArray(0)
	r.chunks[coord] = b
}

// Release deletes the buffers of coord, if any.
func (r *ChunkRenderer) Release(coord world.ChunkCoord) {
	if b, ok := r.chunks[coord]; ok {
		b.delete()
		delete(r.chunks, coord)
	}
}

// Len returns the number of chunks with live buffers.
func (r *ChunkRenderer) Len() int {
	return len(r.chunks)
}

// Draw renders every uploaded chunk that intersects the view frustum and
// returns how many were drawn. model is applied on top of the world-space mesh.
func (r *ChunkRenderer) Draw(projection, view, model mgl32.Mat4) int {
	defer profiling.Track("graphics.ChunkRenderer.Draw")()

	frustum := NewFrustum(projection.Mul4(view).Mul4(model))

	r.shader.Use()
	r.shader.SetMatrix4("u_projection", projection)
	r.shader.SetMatrix4("u_view", view)
	r.shader.SetMatrix4("u_model", model)
	r.shader.SetVector3("u_light_dir", r.lighting.Direction)
	r.shader.SetVector3("u_light_color", r.lighting.Color)
	r.shader.SetFloat("u_ambient", r.lighting.Ambient)
	r.shader.SetInt("u_atlas", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.atlas)

	drawn := 0
	for _, b := range r.chunks {
		if !frustum.IntersectsAABB(b.min, b.max) {
			continue
		}
		gl.BindVertexArray(b.vao)
		gl.DrawElements(gl.TRIANGLES, b.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
		drawn++
	}
	gl.BindVertexArray(0)
	return drawn
}

// Delete frees every chunk buffer and the shader. The atlas texture belongs
// to the caller.
func (r *ChunkRenderer) Delete() {
	for coord := range r.chunks {
		r.Release(coord)
	}
	r.shader.Delete()
}
