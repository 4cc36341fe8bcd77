package render

import "github.com/milk9111/walkthedog/common"

// Image is a whole texture placed on the canvas.
type Image struct {
	texture  Texture
	position common.Point
}

func NewImage(texture Texture, position common.Point) Image {
	return Image{texture: texture, position: position}
}

func (i *Image) Draw(r Renderer) {
	r.DrawEntireImage(i.texture, i.position)
}

// MoveHorizontally shifts the image by distance pixels.
func (i *Image) MoveHorizontally(distance int16) {
	i.SetX(i.position.X + distance)
}

func (i *Image) SetX(x int16) {
	i.position.X = x
}

func (i *Image) Position() common.Point {
	return i.position
}

func (i *Image) Width() int16 {
	return int16(i.texture.Width())
}

func (i *Image) Height() int16 {
	return int16(i.texture.Height())
}

// Right returns the x-coordinate of the image's right edge.
func (i *Image) Right() int16 {
	return i.position.X + i.Width()
}

// Collider is an image whose full extent is solid.
type Collider struct {
	image       Image
	boundingBox common.Rect
}

func NewCollider(image Image) Collider {
	return Collider{
		image:       image,
		boundingBox: common.NewRect(image.position, image.Width(), image.Height()),
	}
}

func (c *Collider) Draw(r Renderer) {
	c.image.Draw(r)
}

// DrawBounds outlines the collider for the debug overlay.
func (c *Collider) DrawBounds(r Renderer) {
	r.DrawRect(c.boundingBox, BarrierBoundsColor)
}

func (c *Collider) BoundingBox() common.Rect {
	return c.boundingBox
}

func (c *Collider) MoveHorizontally(distance int16) {
	c.boundingBox.SetX(c.boundingBox.X() + distance)
	c.image.MoveHorizontally(distance)
}
