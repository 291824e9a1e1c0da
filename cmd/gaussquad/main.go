// Command gaussquad compares Gauss–Legendre rules on integrands with known integrals.
//
// Usage:
//
//	gaussquad rules [-o text|json|yaml]
//	gaussquad run [--case NAME]... [--rule NAME]...
//	gaussquad integrate --expr poly --coeffs 2,3,5 --a 0 --b 2
//
// Every flag can also be set with a GAUSSQUAD_ environment variable
// (GAUSSQUAD_RULES_FILE, GAUSSQUAD_OUTPUT, ...) or in the file named by --config.
package main

import (
	goflag "flag"
	"os"

	"k8s.io/klog/v2"
)

func main() {
	klog.InitFlags(nil)

	cmd := NewCommand(os.Stdout)
	cmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)

	if err := cmd.Execute(); err != nil {
		klog.ErrorS(err, "gaussquad failed")
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}
