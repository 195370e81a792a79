package pypi

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
)

// ErrChallenge is returned when the index's proof-of-work gate could not be
// passed for a page.
var ErrChallenge = errors.New("challenge unsolved")

// alphabet enumerates answer characters in the order the brute force walks
// them. The order is fixed, so a given puzzle always resolves to the same
// answer after the same number of attempts.
const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var (
	scriptPathRE = regexp.MustCompile(`/(.*)/script\.js`)
	challengeRE  = regexp.MustCompile(`init\(\[\{"ty":"pow","data":\{"base":"(.+?)","hash":"(.+?)","hmac":"(.+?)","expires":"(.+?)"\}\}\], "(.+?)"`)
)

type powPayload struct {
	Token string      `json:"token"`
	Data  []powAnswer `json:"data"`
}

type powAnswer struct {
	Type    string `json:"ty"`
	Base    string `json:"base"`
	Answer  string `json:"answer"`
	HMAC    string `json:"hmac"`
	Expires string `json:"expires"`
}

// Solve passes the index's anti-automation gate for rawURL. It fetches the
// page and, when a challenge script is referenced, extracts the puzzle,
// brute-forces the two-character answer, and posts it back. The session
// cookie the index sets on acceptance lands in the client's jar, admitting
// the fetches that follow.
//
// A page that references no challenge script, or a script that carries no
// puzzle, needs no work and counts as success. Any other failed step returns
// [ErrChallenge]; Solve itself never retries.
func (c *Client) Solve(ctx context.Context, rawURL string) error {
	page, err := c.GetText(ctx, rawURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrChallenge, err)
	}

	m := scriptPathRE.FindStringSubmatch(page)
	if m == nil {
		return nil
	}
	path := m[1]

	script, err := c.GetText(ctx, fmt.Sprintf("%s/%s/script.js", c.baseURL, path))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrChallenge, err)
	}

	cm := challengeRE.FindStringSubmatch(script)
	if cm == nil {
		return nil
	}
	base, target, hmac, expires, token := cm[1], cm[2], cm[3], cm[4], cm[5]

	answer, ok := solvePow(base, target)
	if !ok {
		return fmt.Errorf("%w: no answer matches hash %s", ErrChallenge, target)
	}

	payload := powPayload{
		Token: token,
		Data:  []powAnswer{{Type: "pow", Base: base, Answer: answer, HMAC: hmac, Expires: expires}},
	}
	if err := c.PostJSON(ctx, fmt.Sprintf("%s/%s/fst-post-back", c.baseURL, path), payload); err != nil {
		return fmt.Errorf("%w: %w", ErrChallenge, err)
	}
	return nil
}

// solvePow brute-forces the two-character suffix whose SHA-256 digest of
// base+suffix equals the hex-encoded target. Both characters walk the
// alphabet in fixed order; the first hit wins. Exhausting all combinations
// yields ok=false.
func solvePow(base, target string) (answer string, ok bool) {
	want, err := hex.DecodeString(target)
	if err != nil || len(want) != sha256.Size {
		return "", false
	}

	buf := make([]byte, len(base)+2)
	copy(buf, base)
	for i := 0; i < len(alphabet); i++ {
		buf[len(base)] = alphabet[i]
		for j := 0; j < len(alphabet); j++ {
			buf[len(base)+1] = alphabet[j]
			sum := sha256.Sum256(buf)
			if bytes.Equal(sum[:], want) {
				return string(buf[len(base):]), true
			}
		}
	}
	return "", false
}
