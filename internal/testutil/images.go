// Package testutil provides image payloads and an in-memory object store for tests.
package testutil

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
)

func solid(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 40, G: 120, B: 200, A: 255})
		}
	}
	return img
}

func PNG(width, height int) []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, solid(width, height)); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func JPEG(width, height int) []byte {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, solid(width, height), nil); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// GPSTIFF returns a little-endian TIFF holding only a GPS IFD with the given
// coordinates. Negative values are written with S/W references.
func GPSTIFF(lat, lon float64) []byte {
	const (
		ifd0Offset = 8
		gpsOffset  = ifd0Offset + 2 + 12 + 4
		latOffset  = gpsOffset + 2 + 4*12 + 4
		lonOffset  = latOffset + 24
	)

	latRef, lonRef := byte('N'), byte('E')
	if lat < 0 {
		latRef, lat = 'S', -lat
	}
	if lon < 0 {
		lonRef, lon = 'W', -lon
	}

	var buf bytes.Buffer
	le := binary.LittleEndian
	w := func(v interface{}) { binary.Write(&buf, le, v) }

	buf.WriteString("II")
	w(uint16(42))
	w(uint32(ifd0Offset))

	// IFD0: GPS pointer only.
	w(uint16(1))
	w(uint16(0x8825))
	w(uint16(4))
	w(uint32(1))
	w(uint32(gpsOffset))
	w(uint32(0))

	// GPS IFD.
	w(uint16(4))
	ascii := func(tag uint16, ref byte) {
		w(tag)
		w(uint16(2))
		w(uint32(2))
		buf.Write([]byte{ref, 0, 0, 0})
	}
	rational := func(tag uint16, offset uint32) {
		w(tag)
		w(uint16(5))
		w(uint32(3))
		w(offset)
	}
	ascii(1, latRef)
	rational(2, latOffset)
	ascii(3, lonRef)
	rational(4, lonOffset)
	w(uint32(0))

	writeDMS := func(v float64) {
		deg := math.Floor(v)
		min := math.Floor((v - deg) * 60)
		sec := (v - deg - min/60) * 3600
		w(uint32(deg))
		w(uint32(1))
		w(uint32(min))
		w(uint32(1))
		w(uint32(math.Round(sec * 1000)))
		w(uint32(1000))
	}
	writeDMS(lat)
	writeDMS(lon)

	return buf.Bytes()
}
