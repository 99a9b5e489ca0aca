package geo

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/rwcarlsen/goexif/exif"
)

var ErrNoLocation = errors.New("no GPS location in image")

// ExtractGPS reads the EXIF GPS coordinates of an image.
func ExtractGPS(r io.Reader) (lat, lon float64, err error) {
	x, err := exif.Decode(r)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrNoLocation, err)
	}

	lat, lon, err = x.LatLong()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrNoLocation, err)
	}
	if math.IsNaN(lat) || math.IsNaN(lon) || (lat == 0 && lon == 0) {
		return 0, 0, ErrNoLocation
	}
	return lat, lon, nil
}
