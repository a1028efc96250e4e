package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"

	"github.com/san-kum/atomica/internal/atomic"
	"github.com/san-kum/atomica/internal/logging"
	"github.com/san-kum/atomica/internal/nuclear"
	"github.com/san-kum/atomica/internal/orbital"
)

func fissionCmd() *cobra.Command {
	var z, a int

	cmd := &cobra.Command{
		Use:   "fission",
		Short: "compute the energy released by fissioning a nucleus",
		RunE: func(cmd *cobra.Command, args []string) error {
			nucleus, err := atomic.NewNucleus(z, a, mgl64.Vec3{})
			if err != nil {
				return err
			}

			reactor := nuclear.NewReactor(logging.New(logLevel))
			ev, err := reactor.Fission(nucleus)
			if err != nil {
				return err
			}
			return printReaction("fission", z, a, ev, reactor)
		},
	}
	cmd.Flags().IntVar(&z, "z", 92, "atomic number")
	cmd.Flags().IntVar(&a, "a", 235, "mass number")
	return cmd
}

func fusionCmd() *cobra.Command {
	var z1, a1, z2, a2 int

	cmd := &cobra.Command{
		Use:   "fusion",
		Short: "compute the energy released by fusing two nuclei",
		RunE: func(cmd *cobra.Command, args []string) error {
			first, err := atomic.NewNucleus(z1, a1, mgl64.Vec3{})
			if err != nil {
				return err
			}
			second, err := atomic.NewNucleus(z2, a2, mgl64.Vec3{})
			if err != nil {
				return err
			}

			reactor := nuclear.NewReactor(logging.New(logLevel))
			ev, err := reactor.Fusion(first, second)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "channel\tfusion\n")
			fmt.Fprintf(w, "reactants\tZ=%d A=%d + Z=%d A=%d\n", z1, a1, z2, a2)
			fmt.Fprintf(w, "released\t%e eV (%.4f MeV)\n", ev, ev/1e6)
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&z1, "z1", 1, "first atomic number")
	cmd.Flags().IntVar(&a1, "a1", 2, "first mass number")
	cmd.Flags().IntVar(&z2, "z2", 1, "second atomic number")
	cmd.Flags().IntVar(&a2, "a2", 3, "second mass number")
	return cmd
}

func printReaction(channel string, z, a int, ev float64, reactor *nuclear.Reactor) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "channel\t%s\n", channel)
	fmt.Fprintf(w, "nuclide\tZ=%d A=%d\n", z, a)
	fmt.Fprintf(w, "released\t%e eV (%.4f MeV)\n", ev, ev/1e6)
	fmt.Fprintf(w, "binding/nucleon\t%e eV\n", reactor.BindingEnergyPerNucleon(z, a))
	return w.Flush()
}

func jumpCmd() *cobra.Command {
	var z, a, from, to int

	cmd := &cobra.Command{
		Use:   "jump",
		Short: "perform an electron orbital transition and report the photon",
		RunE: func(cmd *cobra.Command, args []string) error {
			if from < 1 {
				return fmt.Errorf("starting level must be >= 1, got %d", from)
			}
			atom, err := atomic.NewAtom(z, a, mgl64.Vec3{})
			if err != nil {
				return err
			}
			if len(atom.Electrons()) == 0 {
				return fmt.Errorf("Z=%d has no electrons to jump", z)
			}

			electron := atom.Electrons()[0]
			electron.SetLevel(from)

			model := orbital.NewModel(logging.New(logLevel))
			deltaE, err := model.Jump(electron, atom, to)
			if err != nil {
				return err
			}

			kind := "absorption"
			if deltaE < 0 {
				kind = "emission"
			}
			wavelength := orbital.Wavelength(deltaE)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "transition\tn=%d -> n=%d (Z=%d)\n", from, to, z)
			fmt.Fprintf(w, "kind\t%s\n", kind)
			fmt.Fprintf(w, "photon energy\t%.6f eV\n", deltaE)
			fmt.Fprintf(w, "wavelength\t%.2f nm\n", wavelength)
			fmt.Fprintf(w, "band\t%s\n", orbital.ClassifyBand(wavelength))
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&z, "z", 1, "atomic number")
	cmd.Flags().IntVar(&a, "a", 1, "mass number")
	cmd.Flags().IntVar(&from, "from", 1, "starting level")
	cmd.Flags().IntVar(&to, "to", 2, "target level")
	return cmd
}
