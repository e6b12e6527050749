package core_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/toejough/cmdr/internal/core"
	"github.com/toejough/cmdr/internal/help"
)

func TestExit_HelpRequestPrintsOnlyHelp(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	env := core.NewExecuteEnv(nil)

	code := core.Exit(env, help.NewDecorator(false), &core.HelpRequest{Command: "build", Help: "build help\n"})

	g.Expect(code).To(Equal(0))
	g.Expect(env.Output()).To(Equal("build help\n"))

	recorded, exited := env.ExitCode()
	g.Expect(exited).To(BeTrue())
	g.Expect(recorded).To(Equal(0))
}

func TestExit_ParseErrorPrintsDiagnosticThenHelp(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	env := core.NewExecuteEnv(nil)
	err := &core.ParseError{Command: "build", Help: "build help\n", Err: core.ErrPositionalRequired}

	code := core.Exit(env, help.NewDecorator(false), err)

	g.Expect(code).To(Equal(1))
	g.Expect(env.Output()).To(Equal("Error: positional option required\nbuild help\n"))
}

func TestExit_SchemaErrorPrintsDiagnosticOnly(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	env := core.NewExecuteEnv(nil)

	code := core.Exit(env, help.NewDecorator(false), fmt.Errorf("%w 'Build'", core.ErrInvalidCommandName))

	g.Expect(code).To(Equal(1))
	g.Expect(env.Output()).To(Equal("Error: command names must be pure lowercase letters 'Build'\n"))
}

func TestExit_DecoratedOutputStripsToPlain(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	err := &core.ParseError{Help: "help\n", Err: core.ErrUnknownOption}

	plain := core.NewExecuteEnv(nil)
	core.Exit(plain, help.NewDecorator(false), err)

	colored := core.NewExecuteEnv(nil)
	core.Exit(colored, help.NewDecorator(true), err)

	g.Expect(colored.Output()).NotTo(Equal(plain.Output()))
	g.Expect(help.StripANSI(colored.Output())).To(Equal(plain.Output()))
}

func TestRun_SuccessPrintsBanner(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	env := core.NewExecuteEnv([]string{"./reduce", "build", "personal"})

	res, err := core.Run(env, reduceRegistry(t))
	g.Expect(err).NotTo(HaveOccurred())

	build, ok := res.Command("build")
	g.Expect(ok).To(BeTrue())
	g.Expect(build.String("build0")).To(Equal("personal"))

	g.Expect(env.Output()).To(Equal("reduce_v0.1.0\n" + strings.Repeat("-", help.RuleWidth) + "\n"))

	_, exited := env.ExitCode()
	g.Expect(exited).To(BeFalse())
}

func TestRun_NoBannerWithoutAppOrVersion(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	reg := core.NewRegistry(core.Settings{})
	g.Expect(reg.Register("build", "Build", "")).To(Succeed())

	env := core.NewExecuteEnv([]string{"app", "build"})

	_, err := core.Run(env, reg)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(env.Output()).To(BeEmpty())
}

func TestRun_FailureGoesThroughExit(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	reg := reduceRegistry(t)
	build, _ := reg.Command("build")
	env := core.NewExecuteEnv([]string{"./reduce", "build"})

	res, err := core.Run(env, reg)

	g.Expect(res).To(BeNil())

	var exitErr core.ExitError
	g.Expect(errors.As(err, &exitErr)).To(BeTrue())
	g.Expect(exitErr.Code).To(Equal(1))
	g.Expect(err).To(MatchError(core.ErrPositionalRequired))
	g.Expect(env.Output()).To(Equal("Error: positional option required\n" + build.Help()))

	code, exited := env.ExitCode()
	g.Expect(exited).To(BeTrue())
	g.Expect(code).To(Equal(1))
}

func TestRun_HelpExitsZero(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	reg := reduceRegistry(t)
	env := core.NewExecuteEnv([]string{"./reduce"})

	_, err := core.Run(env, reg)

	g.Expect(err).To(MatchError(core.ErrHelp))
	g.Expect(env.Output()).To(Equal(reg.Help()))

	code, _ := env.ExitCode()
	g.Expect(code).To(Equal(0))
}
