// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lov

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/formgen/internal/registry"
)

// ErrExhausted means even the timestamp fallback collided: the caller must
// intervene rather than have the generator loop forever.
var ErrExhausted = errors.New("identifier space exhausted")

// nonAlnumRe strips everything but letters and digits from prefix source
// text.
var nonAlnumRe = regexp.MustCompile(`[^A-Z0-9]+`)

// prefixRetryCap bounds the counter loop before the timestamp fallback.
const prefixRetryCap = 99

// Prefix derives a unique short prefix from a file or sheet name: the first
// three alphanumeric characters uppercased (padded with X), a dash, and the
// first two hex characters of the name's md5 digest. Collisions append a
// counter up to 99 retries; after that a "-HHMM" timestamp on the three-char
// base is the escape valve. If that candidate is also taken, Prefix returns
// ErrExhausted.
func (g *Generator) Prefix(baseText string) (string, error) {
	clean := nonAlnumRe.ReplaceAllString(strings.ToUpper(baseText), "")
	base := (clean + "XXX")[:3]

	digest := md5.Sum([]byte(baseText))
	hashPart := strings.ToUpper(hex.EncodeToString(digest[:1]))

	candidate := base + "-" + hashPart
	if g.Registry.Reserve(registry.KindPrefix, candidate) {
		return candidate, nil
	}

	original := candidate
	for n := 1; n <= prefixRetryCap; n++ {
		candidate = original + strconv.Itoa(n)
		if g.Registry.Reserve(registry.KindPrefix, candidate) {
			return candidate, nil
		}
	}

	// Many same-named sources in one registry lifetime. Not expected in
	// normal operation.
	candidate = base + "-" + g.now().Format("1504")
	if g.Registry.Reserve(registry.KindPrefix, candidate) {
		return candidate, nil
	}
	return "", fmt.Errorf("prefix for %q: %w", baseText, ErrExhausted)
}
