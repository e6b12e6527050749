package core_test

import (
	"errors"
	"strings"
	"testing"

	. "github.com/onsi/gomega"
	"pgregory.net/rapid"

	"github.com/toejough/cmdr/internal/core"
	"github.com/toejough/cmdr/internal/option"
)

// Property: asking a command for help yields exactly its precomputed help text
func TestProperty_HelpIsIdempotent(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(rt)

		names := rapid.SliceOfNDistinct(
			rapid.StringMatching(`[a-z]{1,8}`).Filter(func(s string) bool { return s != core.GlobalCommand }),
			1, 5, rapid.ID[string],
		).Draw(rt, "names")

		reg := core.NewRegistry(core.Settings{Invoker: "./app"})
		for _, name := range names {
			g.Expect(reg.Register(name, "does "+name, "", option.Decl{Desc: "arg"})).To(Succeed())
		}

		name := rapid.SampledFrom(names).Draw(rt, "target")
		flag := rapid.SampledFrom([]string{"-h", "--help"}).Draw(rt, "flag")

		_, err := reg.Parse([]string{name, flag})

		var req *core.HelpRequest
		g.Expect(errors.As(err, &req)).To(BeTrue())

		cmd, _ := reg.Command(name)
		g.Expect(req.Help).To(Equal(cmd.Help()))
	})
}

// Property: a StringList value parsed from the command line comes back as the same list
func TestProperty_ListArgumentRoundTrips(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(rt)

		items := rapid.SliceOfN(rapid.StringMatching(`[a-z0-9]{1,5}`), 1, 5).Draw(rt, "items")

		reg := core.NewRegistry(core.Settings{})
		g.Expect(reg.Register("tag", "Tag", "", option.Decl{Key: "--names=LIST", Type: option.StringList})).To(Succeed())

		res, err := reg.Parse([]string{"tag", "--names", strings.Join(items, ",")})
		g.Expect(err).NotTo(HaveOccurred())

		tag, _ := res.Command("tag")
		g.Expect(tag.Strings("names")).To(Equal(items))
	})
}

// Property: parse either succeeds or returns one of the two envelope types
func TestProperty_ParseOutcomeIsClassified(t *testing.T) {
	t.Parallel()

	rapid.Check(t, checkParseOutcome)
}

func FuzzParse(f *testing.F) {
	f.Fuzz(rapid.MakeFuzz(checkParseOutcome))
}

func checkParseOutcome(rt *rapid.T) {
	g := NewWithT(rt)

	token := rapid.SampledFrom([]string{
		"build", "publish", "clean", "personal", "iso,all", "pacman",
		"-d", "--debug", "-h", "--target", "--target=s3", "s3", "--min", "--min=2", "2", "-",
		"--verbose", "--nope", "global", "",
	})
	args := rapid.SliceOfN(token, 0, 8).Draw(rt, "args")

	reg := reduceRegistryT(rt)

	res, err := reg.Parse(args)
	if err == nil {
		g.Expect(res).NotTo(BeNil())
		return
	}

	var (
		req  *core.HelpRequest
		perr *core.ParseError
	)

	g.Expect(errors.As(err, &req) || errors.As(err, &perr)).To(BeTrue(), "unclassified error %v", err)
	g.Expect(res).To(BeNil())

	if perr != nil {
		g.Expect(perr.Help).NotTo(BeEmpty())
	}
}

// reduceRegistryT mirrors reduceRegistry for rapid checks.
func reduceRegistryT(rt *rapid.T) *core.Registry {
	reg := core.NewRegistry(core.Settings{Invoker: "./reduce"})

	for _, c := range []struct {
		name  string
		decls []option.Decl
	}{
		{"build", []option.Decl{{Desc: "Profile"}, {Key: "-d|--debug"}}},
		{"publish", []option.Decl{{Desc: "Profile"}, {Key: "--target=DEST", Type: option.String, Allowed: []any{"s3"}}}},
		{"clean", []option.Decl{
			{Type: option.StringList, Allowed: []any{"all", "initramfs", "iso"}},
			{Key: "--min=N", Type: option.Integer, Allowed: []any{1, 2, 3}},
		}},
	} {
		err := reg.Register(c.name, c.name, "", c.decls...)
		if err != nil {
			rt.Fatalf("register %s: %v", c.name, err)
		}
	}

	err := reg.AddGlobal(option.Decl{Key: "--verbose"})
	if err != nil {
		rt.Fatalf("add global: %v", err)
	}

	return reg
}
