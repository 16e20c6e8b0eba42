// seehuhn.de/go/pagesetup - a library for page setup and printer validation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Page-setup lists paper sizes and checks page setups against printer
// capabilities.
//
// Printer capabilities are read from a JSON file, see the printertest
// package for the format.  Without a capability file, checks accept
// every page with a positive printable area.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/pagesetup"
	"seehuhn.de/go/pagesetup/internal/printertest"
	"seehuhn.de/go/pagesetup/logging"
	"seehuhn.de/go/pagesetup/paper"
	"seehuhn.de/go/pagesetup/printer"
)

var (
	capsPath    string
	printerName string
	unitName    string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "page-setup",
	Short: "Inspect paper sizes and validate page setups",
	Long: `Page-setup lists the known paper sizes and checks page setups
against printer capabilities.

All lengths are given in printer's points unless --unit says otherwise.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
				&slog.HandlerOptions{Level: slog.LevelDebug})))
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&capsPath, "capabilities", "",
		"JSON file describing printer capabilities")
	rootCmd.PersistentFlags().StringVarP(&printerName, "printer", "p", "",
		"printer to validate against")
	rootCmd.PersistentFlags().StringVarP(&unitName, "unit", "u", "",
		"measurement unit (pt, in or mm)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug output")

	papersCmd.Flags().StringVar(&papersCategory, "category", "",
		"only list sizes from this category")

	checkCmd.Flags().Float64Var(&checkWidth, "width", 0, "page width")
	checkCmd.Flags().Float64Var(&checkHeight, "height", 0, "page height")
	checkCmd.Flags().StringVar(&checkPaper, "paper", "",
		`named size from the catalog ("category:name")`)
	checkCmd.Flags().StringVar(&checkOrient, "orientation", "portrait",
		"portrait, landscape or reverse-landscape")
	checkCmd.Flags().StringVar(&checkMargins, "margins", "",
		"margins as left,top,right,bottom, or one value for all sides")
	checkCmd.Flags().BoolVar(&checkAdjust, "adjust", false,
		"adopt the printer's substitute instead of rejecting")

	rootCmd.AddCommand(papersCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(defaultsCmd)
	rootCmd.AddCommand(printersCmd)
}

func displayUnit() (pagesetup.Unit, error) {
	if unitName == "" {
		return pagesetup.Point, nil
	}
	return pagesetup.ParseUnit(unitName)
}

func newValidator() (printer.Validator, error) {
	if capsPath == "" {
		if printerName != "" {
			return printer.Validator{}, fmt.Errorf(
				"--printer %q requires --capabilities", printerName)
		}
		return printer.Validator{}, nil
	}
	svc, err := printertest.LoadFile(capsPath)
	if err != nil {
		return printer.Validator{}, err
	}
	return printer.Validator{Service: svc}, nil
}

var papersCategory string

var papersCmd = &cobra.Command{
	Use:   "papers",
	Short: "List the known paper sizes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var u pagesetup.Unit
		convert := unitName != ""
		if convert {
			var err error
			u, err = pagesetup.ParseUnit(unitName)
			if err != nil {
				return err
			}
		}

		n := 0
		for _, e := range paper.New().All() {
			if papersCategory != "" && e.Category != papersCategory {
				continue
			}
			label := e.Dimensions
			if convert {
				w, h := e.Fields(u)
				label = u.Format(w) + " x " + u.Format(h) + " " + u.Abbr()
			}
			fmt.Printf("%-26s %-26s %s\n", e.Category, e.Name, label)
			n++
		}
		if papersCategory != "" && n == 0 {
			return fmt.Errorf("unknown category %q", papersCategory)
		}
		return nil
	},
}

var (
	checkWidth   float64
	checkHeight  float64
	checkPaper   string
	checkOrient  string
	checkMargins string
	checkAdjust  bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a page setup against a printer",
	Long: `Check builds a page setup from the given dimensions and verifies
that it can be printed.  The page is rejected if its margins leave no
printable area, or if the selected printer does not support it.

With --adjust, the printer's substitute values are adopted and shown
instead of rejecting the page.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := displayUnit()
		if err != nil {
			return err
		}

		width, height := checkWidth, checkHeight
		o := pagesetup.Portrait
		if checkPaper != "" {
			category, name, ok := strings.Cut(checkPaper, ":")
			if !ok {
				return fmt.Errorf("invalid paper size %q, need \"category:name\"", checkPaper)
			}
			e, found := paper.New().Find(category, name)
			if !found {
				return fmt.Errorf("unknown paper size %q", checkPaper)
			}
			width, height = e.Fields(u)
			o = e.Orientation()
		} else if width <= 0 || height <= 0 {
			return errors.New("no page size given (use --width and --height, or --paper)")
		}
		if checkPaper == "" || cmd.Flags().Changed("orientation") {
			o, err = pagesetup.ParseOrientation(checkOrient)
			if err != nil {
				return err
			}
		}
		m, err := parseMargins(checkMargins)
		if err != nil {
			return err
		}

		f := pagesetup.Fields{
			Width: width, Height: height,
			Left: m[0], Top: m[1], Right: m[2], Bottom: m[3],
		}
		page, err := pagesetup.FromFields(f, o, u)
		if err != nil {
			return err
		}

		v, err := newValidator()
		if err != nil {
			return err
		}

		var outcome printer.Outcome
		if checkAdjust {
			outcome = v.Reconcile(printerName, page)
		} else {
			outcome = v.Validate(printerName, page)
		}

		switch outcome.Status {
		case printer.Accepted:
			fmt.Println("accepted")
		case printer.Adjusted:
			fmt.Printf("adjusted: %s\n", joinFields(outcome.Changed))
			printPage(outcome.Page, u)
		case printer.Rejected:
			return outcome.Reason
		}
		return nil
	},
}

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Show a printer's default page setup",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := displayUnit()
		if err != nil {
			return err
		}
		v, err := newValidator()
		if err != nil {
			return err
		}
		page, err := v.Defaults(printerName)
		if err != nil {
			return err
		}
		printPage(page, u)
		return nil
	},
}

var printersCmd = &cobra.Command{
	Use:   "printers",
	Short: "List the printers in a capability file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if capsPath == "" {
			return errors.New("no --capabilities given")
		}
		svc, err := printertest.LoadFile(capsPath)
		if err != nil {
			return err
		}
		names, err := svc.Printers()
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

// parseMargins parses the --margins flag, either a single value for all
// four sides or left,top,right,bottom.
func parseMargins(s string) ([4]float64, error) {
	var res [4]float64
	if s == "" {
		return res, nil
	}
	parts := strings.Split(s, ",")
	switch len(parts) {
	case 1:
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return res, fmt.Errorf("invalid margin %q", parts[0])
		}
		for i := range res {
			res[i] = v
		}
	case 4:
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return res, fmt.Errorf("invalid margin %q", p)
			}
			res[i] = v
		}
	default:
		return res, fmt.Errorf("need 1 or 4 margin values, got %d", len(parts))
	}
	return res, nil
}

func printPage(page pagesetup.PageFormat, u pagesetup.Unit) {
	f := page.Fields(u)
	abbr := u.Abbr()
	fmt.Printf("width:       %s %s\n", u.Format(f.Width), abbr)
	fmt.Printf("height:      %s %s\n", u.Format(f.Height), abbr)
	fmt.Printf("orientation: %s\n", page.Orientation)
	fmt.Printf("margins:     %s %s %s %s %s\n",
		u.Format(f.Left), u.Format(f.Top), u.Format(f.Right), u.Format(f.Bottom), abbr)
}

func joinFields(fields []printer.Field) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.String()
	}
	return strings.Join(names, ", ")
}
