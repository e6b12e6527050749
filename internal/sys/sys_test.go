package sys_test

import (
	"errors"
	"os"
	"os/user"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/toejough/cmdr/internal/sys"
)

func TestInvoker(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(sys.Invoker("reduce")).To(Equal("./reduce"))
	g.Expect(sys.Invoker("")).To(Equal("./" + filepath.Base(os.Args[0])))
}

func TestScriptName(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(sys.ScriptName()).To(Equal(filepath.Base(os.Args[0])))
}

//nolint:paralleltest // swaps the package-level user lookup and sets env
func TestUserName_FromUserDatabase(t *testing.T) {
	g := NewWithT(t)

	restore := sys.SetLookupUserForTest(func() (*user.User, error) {
		return &user.User{Username: "builder"}, nil
	})
	defer restore()

	g.Expect(sys.UserName()).To(Equal("builder"))
}

//nolint:paralleltest // swaps the package-level user lookup and sets env
func TestUserName_FallsBackToEnv(t *testing.T) {
	g := NewWithT(t)

	restore := sys.SetLookupUserForTest(func() (*user.User, error) {
		return nil, errors.New("no passwd")
	})
	defer restore()

	t.Setenv("USER", "fallback")

	g.Expect(sys.UserName()).To(Equal("fallback"))
}
