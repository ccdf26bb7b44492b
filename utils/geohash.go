// utils/geohash.go
package utils

import (
	"errors"
	"strings"
)

// base32 alphabet used by geohashes; a, i, l and o are excluded
const geohashAlphabet = "0123456789bcdefghjkmnpqrstuvwxyz"

// DefaultGeohashPrecision is the number of characters stored on a business
// document when no precision is requested explicitly.
const DefaultGeohashPrecision = 9

var (
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
	ErrInvalidPrecision = errors.New("precision must be between 1 and 12")
)

// EncodeGeohash encodes a latitude/longitude pair into a geohash string of the
// requested precision. Alternating bits narrow the longitude (even bit index)
// and latitude (odd bit index) ranges; every 5 bits become one base32
// character. Shared prefixes denote spatial proximity, and the result for
// precision p is always a prefix of the result for p+1.
func EncodeGeohash(lat, lng float64, precision int) (string, error) {
	if lat < -90 || lat > 90 {
		return "", ErrInvalidLatitude
	}
	if lng < -180 || lng > 180 {
		return "", ErrInvalidLongitude
	}
	if precision < 1 || precision > 12 {
		return "", ErrInvalidPrecision
	}

	var (
		sb      strings.Builder
		latMin  = -90.0
		latMax  = 90.0
		lngMin  = -180.0
		lngMax  = 180.0
		idx     = 0
		bit     = 0
		evenBit = true
	)

	for sb.Len() < precision {
		if evenBit {
			mid := (lngMin + lngMax) / 2
			if lng >= mid {
				idx = idx*2 + 1
				lngMin = mid
			} else {
				idx = idx * 2
				lngMax = mid
			}
		} else {
			mid := (latMin + latMax) / 2
			if lat >= mid {
				idx = idx*2 + 1
				latMin = mid
			} else {
				idx = idx * 2
				latMax = mid
			}
		}
		evenBit = !evenBit

		bit++
		if bit == 5 {
			sb.WriteByte(geohashAlphabet[idx])
			bit = 0
			idx = 0
		}
	}

	return sb.String(), nil
}
