// Package export serializes industry packs for sharing. The transport
// format is a JSON envelope {metadata, pack, checksum}; the checksum is
// an integrity hint, not a security boundary, so import surfaces a
// mismatch as a warning rather than a rejection (exported packs are
// legitimately hand-edited).
package export

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/efeecllk/game-insights-sub001/errors"
	"github.com/efeecllk/game-insights-sub001/pack"
)

// ExportVersion is the fixed version string of the transport format
const ExportVersion = "1.0.0"

// Metadata describes one export operation
type Metadata struct {
	ExportedAt    time.Time `json:"exportedAt"`
	ExportVersion string    `json:"exportVersion"`
	ExportID      string    `json:"exportId"`
	Author        string    `json:"author,omitempty"`
	Description   string    `json:"description,omitempty"`
	Homepage      string    `json:"homepage,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
}

// Envelope is the on-disk transport document
type Envelope struct {
	Metadata Metadata           `json:"metadata"`
	Pack     *pack.IndustryPack `json:"pack"`
	Checksum string             `json:"checksum"`
}

// Options customizes export metadata. Empty fields fall back to the
// pack's own metadata and description.
type Options struct {
	Author      string
	Description string
	Homepage    string
	Tags        []string
}

// Export serializes a pack into the transport format. The pack is
// deep-cloned first so later in-place mutation by the caller cannot
// affect the exported snapshot. Output is pretty-printed with 2-space
// indentation: exported files are meant to be read and hand-edited.
func Export(p *pack.IndustryPack, opts *Options) (string, error) {
	if err := p.Validate(); err != nil {
		return "", errors.Wrap(err, "Export", "Export", "pack validation")
	}
	if opts == nil {
		opts = &Options{}
	}

	clone := p.Clone()

	meta := Metadata{
		ExportedAt:    time.Now().UTC(),
		ExportVersion: ExportVersion,
		ExportID:      uuid.NewString(),
		Author:        opts.Author,
		Description:   opts.Description,
		Homepage:      opts.Homepage,
		Tags:          opts.Tags,
	}
	if meta.Description == "" {
		meta.Description = p.Description
	}
	if p.Metadata != nil {
		if meta.Author == "" {
			meta.Author = p.Metadata.Author
		}
		if meta.Homepage == "" {
			meta.Homepage = p.Metadata.Homepage
		}
	}

	checksum, err := Checksum(clone)
	if err != nil {
		return "", errors.Wrap(err, "Export", "Export", "checksum computation")
	}

	envelope := Envelope{Metadata: meta, Pack: clone, Checksum: checksum}
	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return "", errors.WrapInvalid(err, "Export", "Export", "envelope serialization")
	}
	return string(data), nil
}

// Checksum computes the hex-encoded SHA-256 digest of the pack's
// canonical (compact struct-order JSON) serialization
func Checksum(p *pack.IndustryPack) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// legacyChecksum is the 32-bit rolling hash used by envelope producers
// without a cryptographic runtime. Kept for verifying their exports:
// hash = hash*31 + byte over the canonical serialization, wrapped to
// signed 32 bits, hex-encoded.
func legacyChecksum(data []byte) string {
	var hash int32
	for _, b := range data {
		hash = hash*31 + int32(b)
	}
	if hash < 0 {
		hash = -hash
	}
	return hex.EncodeToString([]byte{
		byte(hash >> 24), byte(hash >> 16), byte(hash >> 8), byte(hash),
	})
}
