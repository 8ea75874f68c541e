package photon

import (
	"encoding/binary"
	"io"
	mathbits "math"
)

// recordSize is the packed size of one on-disk photon record: pos[3]
// (3*f32) + power (f32) + color[3] (3*u8) + planeAndDirZBit (u8) +
// dirX (i16) + dirY (i16), tightly packed with no padding between
// fields (matching cyPhotonMap.h's Photon layout field-for-field).
const recordSize = 24

// WriteTo dumps every balanced photon (indices 1..n) as a sequence of
// 24-byte little-endian records, one per photon, with no header.
func (m *Map) WriteTo(w io.Writer) (int64, error) {
	n := len(m.Photons) - 1
	buf := make([]byte, recordSize)
	var written int64
	for i := 1; i <= n; i++ {
		p := m.Photons[i]
		binary.LittleEndian.PutUint32(buf[0:4], mathbits.Float32bits(p.Pos.X))
		binary.LittleEndian.PutUint32(buf[4:8], mathbits.Float32bits(p.Pos.Y))
		binary.LittleEndian.PutUint32(buf[8:12], mathbits.Float32bits(p.Pos.Z))
		binary.LittleEndian.PutUint32(buf[12:16], mathbits.Float32bits(p.Power))
		buf[16], buf[17], buf[18] = p.Color[0], p.Color[1], p.Color[2]
		planeByte := byte(p.SplitPlane) & 0x3
		if p.DirZNeg {
			planeByte |= 0x8
		}
		buf[19] = planeByte
		binary.LittleEndian.PutUint16(buf[20:22], uint16(p.DirX))
		binary.LittleEndian.PutUint16(buf[22:24], uint16(p.DirY))

		nw, err := w.Write(buf)
		written += int64(nw)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// ReadFrom loads a raw (unbalanced) photon array from a dump written by
// WriteTo. Callers must call Build on the result before querying it,
// since the dump format preserves individual records but not the
// balanced-tree indexing.
func ReadFrom(r io.Reader) ([]Photon, error) {
	var photons []Photon
	buf := make([]byte, recordSize)
	for {
		_, err := io.ReadFull(r, buf)
		if err == io.EOF {
			break
		}
		if err != nil {
			return photons, err
		}
		var p Photon
		p.Pos.X = mathbits.Float32frombits(binary.LittleEndian.Uint32(buf[0:4]))
		p.Pos.Y = mathbits.Float32frombits(binary.LittleEndian.Uint32(buf[4:8]))
		p.Pos.Z = mathbits.Float32frombits(binary.LittleEndian.Uint32(buf[8:12]))
		p.Power = mathbits.Float32frombits(binary.LittleEndian.Uint32(buf[12:16]))
		p.Color = [3]uint8{buf[16], buf[17], buf[18]}
		p.SplitPlane = Plane(buf[19] & 0x3)
		p.DirZNeg = buf[19]&0x8 != 0
		p.DirX = int16(binary.LittleEndian.Uint16(buf[20:22]))
		p.DirY = int16(binary.LittleEndian.Uint16(buf[22:24]))
		photons = append(photons, p)
	}
	return photons, nil
}
