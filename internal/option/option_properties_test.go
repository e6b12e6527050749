package option_test

import (
	"strconv"
	"strings"
	"testing"

	. "github.com/onsi/gomega"
	"pgregory.net/rapid"

	"github.com/toejough/cmdr/internal/option"
)

// Property: every key built from the grammar parses back into its parts
func TestProperty_Key_WellFormedKeysRoundTrip(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(rt)

		long := "--" + rapid.StringMatching(`[a-z][a-z0-9_\-]{0,12}`).Draw(rt, "long")
		short := ""
		if rapid.Bool().Draw(rt, "hasShort") {
			short = "-" + rapid.StringMatching(`[A-Za-z]`).Draw(rt, "short")
		}

		hint := ""
		if rapid.Bool().Draw(rt, "hasHint") {
			hint = rapid.StringMatching(`[A-Z][A-Z0-9_]{0,8}`).Draw(rt, "hint")
		}

		key := long
		if short != "" {
			key = short + "|" + key
		}

		typ := option.Flag
		if hint != "" {
			key += "=" + hint
			typ = option.String
		}

		spec, err := option.New(option.Decl{Key: key, Type: typ})
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(spec.Short()).To(Equal(short))
		g.Expect(spec.Long()).To(Equal(long))
		g.Expect(spec.Hint()).To(Equal(hint))
	})
}

// Property: keys carrying a character outside the grammar alphabet never register
func TestProperty_Key_StrayCharactersRejected(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(rt)

		name := rapid.StringMatching(`[a-z]{1,8}`).Draw(rt, "name")
		stray := rapid.SampledFrom([]string{" ", ",", "!", ".", "/", "+", "*", "é"}).Draw(rt, "stray")
		at := rapid.IntRange(0, len(name)).Draw(rt, "at")

		key := "--" + name[:at] + stray + name[at:]

		spec, err := option.New(option.Decl{Key: key})
		g.Expect(err).To(MatchError(option.ErrInvalidKeySyntax))
		g.Expect(spec).To(BeNil())
	})
}

// Property: a comma-joined list coerces back to the same ordered, non-empty list
func TestProperty_StringList_RoundTrip(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(rt)

		items := rapid.SliceOfN(rapid.StringMatching(`[a-z0-9]{1,6}`), 1, 6).Draw(rt, "items")

		spec, err := option.New(option.Decl{Type: option.StringList})
		g.Expect(err).NotTo(HaveOccurred())

		v, err := spec.Coerce(strings.Join(items, ","))
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(v.Strings()).To(Equal(items))
		g.Expect(v.Strings()).NotTo(BeEmpty())
	})
}

// Property: integers outside the allowed set are always rejected
func TestProperty_Integer_AllowedSetEnforced(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(rt)

		n := rapid.IntRange(-1000, 1000).Draw(rt, "n")

		spec, err := option.New(option.Decl{Key: "--min=N", Type: option.Integer, Allowed: []any{1, 2, 3}})
		g.Expect(err).NotTo(HaveOccurred())

		v, err := spec.Coerce(strconv.Itoa(n))
		if n >= 1 && n <= 3 {
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(v.Int()).To(Equal(n))
		} else {
			g.Expect(err).To(MatchError(option.ErrInvalidIntegerValue))
		}
	})
}
