package option_test

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/toejough/cmdr/internal/option"
)

func mustSpec(t *testing.T, d option.Decl) *option.Spec {
	t.Helper()

	spec, err := option.New(d)
	if err != nil {
		t.Fatalf("option.New(%+v): %v", d, err)
	}

	return spec
}

func TestCoerceFlag(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	v, err := mustSpec(t, option.Decl{Key: "-d|--debug"}).Coerce("ignored")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(v.Type()).To(Equal(option.Flag))
	g.Expect(v.Bool()).To(BeTrue())
	g.Expect(v.Interface()).To(Equal(true))
	g.Expect(v.String()).To(Equal("true"))
}

func TestCoerceInteger(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	spec := mustSpec(t, option.Decl{Key: "-m|--min=MINIMUM", Type: option.Integer, Allowed: []any{1, 2, 3}})

	v, err := spec.Coerce("2")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(v.Int()).To(Equal(2))
	g.Expect(v.Interface()).To(Equal(2))
	g.Expect(v.String()).To(Equal("2"))

	_, err = spec.Coerce("4")
	g.Expect(err).To(MatchError(option.ErrInvalidIntegerValue))
	g.Expect(err.Error()).To(Equal("invalid integer value '4'"))

	_, err = spec.Coerce("two")
	g.Expect(err).To(MatchError(option.ErrInvalidIntegerValue))
}

func TestCoerceIntegerUnconstrained(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	v, err := mustSpec(t, option.Decl{Type: option.Integer}).Coerce("-17")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(v.Int()).To(Equal(-17))
}

func TestCoerceString(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	spec := mustSpec(t, option.Decl{Allowed: []any{"all", "iso"}})

	v, err := spec.Coerce("iso")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(v.String()).To(Equal("iso"))
	g.Expect(v.Interface()).To(Equal("iso"))
	g.Expect(v.Strings()).To(BeNil())

	_, err = spec.Coerce("foo")
	g.Expect(err).To(MatchError(option.ErrInvalidStringValue))
	g.Expect(err.Error()).To(Equal("invalid string value 'foo'"))
}

func TestCoerceStringList(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	spec := mustSpec(t, option.Decl{Type: option.StringList, Allowed: []any{"all", "initramfs", "iso"}})

	v, err := spec.Coerce("iso,all")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(v.Strings()).To(Equal([]string{"iso", "all"}))
	g.Expect(v.String()).To(Equal("iso,all"))

	_, err = spec.Coerce("pacman,iso")
	g.Expect(err).To(MatchError(option.ErrInvalidArrayValue))
	g.Expect(err.Error()).To(Equal("invalid array value 'pacman'"))
}

func TestValueStringsIsCopy(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	v := option.ListValue("a", "b")
	got := v.Strings()
	got[0] = "z"
	g.Expect(v.Strings()).To(Equal([]string{"a", "b"}))
}
