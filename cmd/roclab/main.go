package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/roclab/internal/config"
	"github.com/san-kum/roclab/internal/export"
	"github.com/san-kum/roclab/internal/remote"
	"github.com/san-kum/roclab/internal/roc"
	"github.com/san-kum/roclab/internal/storage"
	"github.com/san-kum/roclab/internal/system"
	"github.com/san-kum/roclab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir   string
	serverURL string
	domain    string
	causality string
	stability string
	poles     []string
	zeros     []string
	// Config file
	configFile string
	// Preset name
	preset string
	// Plane view size
	planeWidth  int
	planeHeight int
	// SVG export
	svgSize int
	svgOut  string
	// Parser variable override
	variable string
	// Sweep causality variants
	allVariants bool
	// Save classified sessions
	noSave bool
)

// main is the entry point for the roclab CLI; it registers commands and
// flags and executes the root command. It exits the process with status 1
// if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "roclab",
		Short: "region of convergence analysis lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", config.DefaultServerURL, "expression parser server url")

	classifyCmd := &cobra.Command{
		Use:   "classify",
		Short: "classify stability of a pole/zero model",
		RunE:  classifyModel,
	}
	addModelFlags(classifyCmd)
	classifyCmd.Flags().BoolVar(&noSave, "no-save", false, "skip saving the session")

	regionCmd := &cobra.Command{
		Use:   "region",
		Short: "render the region of convergence in the terminal",
		RunE:  renderRegion,
	}
	addModelFlags(regionCmd)
	regionCmd.Flags().IntVar(&planeWidth, "width", 61, "plane width in cells")
	regionCmd.Flags().IntVar(&planeHeight, "height", 25, "plane height in cells")
	regionCmd.Flags().BoolVar(&allVariants, "all", false, "render the causal and anticausal variants side by side")

	parseCmd := &cobra.Command{
		Use:   "parse [expression]",
		Short: "parse a transfer function via the expression server",
		Args:  cobra.ExactArgs(1),
		RunE:  parseExpression,
	}
	parseCmd.Flags().StringVar(&domain, "domain", config.DefaultDomain, "transform domain (laplace|z)")
	parseCmd.Flags().StringVar(&causality, "causality", config.DefaultCausality, "causality (causal|anticausal)")
	parseCmd.Flags().StringVar(&stability, "stability", config.DefaultStability, "declared stability (stable|unstable)")
	parseCmd.Flags().StringVar(&variable, "variable", "", "transform variable (defaults to s or z)")

	convolveCmd := &cobra.Command{
		Use:   "convolve [x] [h]",
		Short: "compute a convolution via the expression server",
		Args:  cobra.ExactArgs(2),
		RunE:  convolveSignals,
	}
	convolveCmd.Flags().StringVar(&domain, "domain", config.DefaultDomain, "transform domain (laplace|z)")

	plotCmd := &cobra.Command{
		Use:   "plot [x] [h]",
		Short: "plot convolution input and output traces",
		Args:  cobra.ExactArgs(2),
		RunE:  plotConvolution,
	}
	plotCmd.Flags().StringVar(&domain, "domain", config.DefaultDomain, "transform domain (laplace|z)")

	playCmd := &cobra.Command{
		Use:   "play [x] [h]",
		Short: "animate a convolution frame by frame",
		Args:  cobra.ExactArgs(2),
		RunE:  playConvolution,
	}
	playCmd.Flags().StringVar(&domain, "domain", config.DefaultDomain, "transform domain (laplace|z)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved sessions",
		RunE:  listSessions,
	}

	showCmd := &cobra.Command{
		Use:   "show [session_id]",
		Short: "show session metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showSession,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [session_id]",
		Short: "export session analysis to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSessionJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [session_id]",
		Short: "export session poles and zeros to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSessionCSV,
	}

	svgCmd := &cobra.Command{
		Use:   "svg [session_id]",
		Short: "export session region plot to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSessionSVG,
	}
	svgCmd.Flags().IntVar(&svgSize, "size", 480, "image size in pixels")
	svgCmd.Flags().StringVar(&svgOut, "out", "", "output file (defaults to <session_id>.svg)")

	presetsCmd := &cobra.Command{
		Use:   "presets [domain]",
		Short: "list available presets for a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for domain: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(classifyCmd, regionCmd, parseCmd, convolveCmd, plotCmd, playCmd, listCmd, showCmd, exportJSONCmd, exportCSVCmd, svgCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&domain, "domain", config.DefaultDomain, "transform domain (laplace|z)")
	cmd.Flags().StringVar(&causality, "causality", config.DefaultCausality, "causality (causal|anticausal)")
	cmd.Flags().StringVar(&stability, "stability", config.DefaultStability, "declared stability (stable|unstable)")
	cmd.Flags().StringSliceVar(&poles, "pole", nil, "pole as re,im (repeatable)")
	cmd.Flags().StringSliceVar(&zeros, "zero", nil, "zero as re,im (repeatable)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// buildModel assembles the system model for classify/region from preset,
// config file and flags. CLI flags override the config file, which in turn
// overrides the preset.
func buildModel(cmd *cobra.Command) (system.Model, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(domain, preset)
		if p == nil {
			return system.Model{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(domain))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return system.Model{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("domain") || (preset == "" && configFile == "") {
		cfg.Domain = domain
	}
	if cmd.Flags().Changed("causality") || (preset == "" && configFile == "") {
		cfg.Causality = causality
	}
	if cmd.Flags().Changed("stability") || (preset == "" && configFile == "") {
		cfg.Stability = stability
	}
	if cmd.Flags().Changed("pole") {
		pts, err := parsePoints(poles)
		if err != nil {
			return system.Model{}, err
		}
		cfg.Poles = pts
	}
	if cmd.Flags().Changed("zero") {
		pts, err := parsePoints(zeros)
		if err != nil {
			return system.Model{}, err
		}
		cfg.Zeros = pts
	}

	return cfg.ToModel()
}

// parsePoints converts "re,im" or bare "re" strings into point configs.
func parsePoints(raw []string) ([]config.PointConfig, error) {
	pts := make([]config.PointConfig, 0, len(raw))
	for _, s := range raw {
		parts := strings.Split(s, ",")
		if len(parts) > 2 {
			return nil, fmt.Errorf("bad point %q: want re,im", s)
		}
		re, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("bad point %q: %w", s, err)
		}
		im := 0.0
		if len(parts) == 2 {
			im, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
			if err != nil {
				return nil, fmt.Errorf("bad point %q: %w", s, err)
			}
		}
		pts = append(pts, config.PointConfig{Re: re, Im: im})
	}
	return pts, nil
}

func classifyModel(cmd *cobra.Command, args []string) error {
	m, err := buildModel(cmd)
	if err != nil {
		return err
	}

	out, err := roc.Analyze(m)
	if err != nil {
		return err
	}

	printOutcome(m, out)

	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	sessionID, err := st.Save(m, out)
	if err != nil {
		return err
	}
	fmt.Printf("session id: %s\n", sessionID)
	return nil
}

func printOutcome(m system.Model, out roc.Outcome) {
	fmt.Printf("domain: %s  causality: %s  declared: %s\n",
		m.Domain, m.Causality, m.DeclaredStability)
	fmt.Printf("poles: %d  zeros: %d\n", len(m.Poles), len(m.Zeros))
	fmt.Println(viz.VerdictLine(out.Verdict.Stable, out.Verdict.Valid))
	if out.Verdict.HasBoundary() {
		fmt.Printf("boundary: %.4f\n", out.Verdict.Boundary)
	}
	fmt.Printf("region: %s\n", out.Region.Kind)
	fmt.Println(out.Verdict.Explanation)
}

func renderRegion(cmd *cobra.Command, args []string) error {
	m, err := buildModel(cmd)
	if err != nil {
		return err
	}

	if allVariants {
		return renderCausalityVariants(m)
	}

	out, err := roc.Analyze(m)
	if err != nil {
		return err
	}

	p := viz.NewPlane(planeWidth, planeHeight)
	fmt.Print(p.Render(m, out))
	fmt.Println(viz.VerdictLine(out.Verdict.Stable, out.Verdict.Valid))
	fmt.Println(out.Verdict.Explanation)
	return nil
}

// renderCausalityVariants classifies the same pole/zero layout under both
// causality assumptions and renders each region.
func renderCausalityVariants(m system.Model) error {
	variants := []system.Model{
		m.WithCausality(system.Causal),
		m.WithCausality(system.AntiCausal),
	}

	outs, err := roc.AnalyzeAll(context.Background(), variants)
	if err != nil {
		return err
	}

	for i, vm := range variants {
		fmt.Printf("=== %s ===\n", vm.Causality)
		p := viz.NewPlane(planeWidth, planeHeight)
		fmt.Print(p.Render(vm, outs[i]))
		fmt.Println(viz.VerdictLine(outs[i].Verdict.Stable, outs[i].Verdict.Valid))
		fmt.Println(outs[i].Verdict.Explanation)
		fmt.Println()
	}
	return nil
}

func parseExpression(cmd *cobra.Command, args []string) error {
	d, err := system.ParseDomain(domain)
	if err != nil {
		return err
	}
	c, err := system.ParseCausality(causality)
	if err != nil {
		return err
	}
	s, err := system.ParseStability(stability)
	if err != nil {
		return err
	}

	v := variable
	if v == "" {
		v = "s"
		if d == system.ZTransform {
			v = "z"
		}
	}

	client := remote.NewClient(serverURL)
	parsedPoles, parsedZeros, err := client.ParseTransferFunction(context.Background(), args[0], v)
	if err != nil {
		return err
	}

	m := system.New(d).WithCausality(c).WithDeclaredStability(s).WithPoles(parsedPoles, parsedZeros)

	out, err := roc.Analyze(m)
	if err != nil {
		return err
	}

	fmt.Printf("parsed %q in %s\n", args[0], v)
	for _, p := range m.Poles {
		fmt.Printf("  pole %s\n", p)
	}
	for _, z := range m.Zeros {
		fmt.Printf("  zero %s\n", z)
	}
	fmt.Println()
	printOutcome(m, out)
	return nil
}

func convolveSignals(cmd *cobra.Command, args []string) error {
	d, err := system.ParseDomain(domain)
	if err != nil {
		return err
	}

	client := remote.NewClient(serverURL)
	result, err := client.Convolve(context.Background(), args[0], args[1], d)
	if err != nil {
		return err
	}

	fmt.Printf("convolution of %q and %q (%d samples, %d frames)\n\n",
		args[0], args[1], len(result.Y), len(result.Frames))

	graph := asciigraph.Plot(result.Y,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("y = x * h"),
	)
	fmt.Println(graph)
	return nil
}

func plotConvolution(cmd *cobra.Command, args []string) error {
	d, err := system.ParseDomain(domain)
	if err != nil {
		return err
	}

	client := remote.NewClient(serverURL)
	result, err := client.Convolve(context.Background(), args[0], args[1], d)
	if err != nil {
		return err
	}

	fmt.Printf("x = %q, h = %q\n\n", args[0], args[1])

	if len(result.XTau) > 0 {
		graph := asciigraph.Plot(result.XTau,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("x(tau)"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	graph := asciigraph.Plot(result.Y,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("y = x * h"),
	)
	fmt.Println(graph)
	return nil
}

func playConvolution(cmd *cobra.Command, args []string) error {
	d, err := system.ParseDomain(domain)
	if err != nil {
		return err
	}

	client := remote.NewClient(serverURL)
	result, err := client.Convolve(context.Background(), args[0], args[1], d)
	if err != nil {
		return err
	}

	return viz.RunPlayer(result, d)
}

func listSessions(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	sessions, err := st.List()
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("no sessions found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tDOMAIN\tCAUSALITY\tSTABLE\tVALID\tREGION")

	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%v\t%v\t%s\n",
			s.ID,
			s.Timestamp.Format("2006-01-02 15:04:05"),
			s.Domain,
			s.Causality,
			s.Stable,
			s.Valid,
			s.Region,
		)
	}

	return w.Flush()
}

func showSession(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportSessionJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	m, err := st.LoadModel(args[0])
	if err != nil {
		return err
	}

	out, err := roc.Analyze(m)
	if err != nil {
		return err
	}

	return export.WriteJSON(os.Stdout, m, out)
}

func exportSessionCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	m, err := st.LoadModel(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"kind", "re", "im"}); err != nil {
		return err
	}
	write := func(kind string, pts []system.ComplexPoint) error {
		for _, p := range pts {
			row := []string{
				kind,
				strconv.FormatFloat(p.Re, 'f', 6, 64),
				strconv.FormatFloat(p.Im, 'f', 6, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	}
	if err := write("pole", m.Poles); err != nil {
		return err
	}
	return write("zero", m.Zeros)
}

func exportSessionSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	m, err := st.LoadModel(args[0])
	if err != nil {
		return err
	}

	out, err := roc.Analyze(m)
	if err != nil {
		return err
	}

	path := svgOut
	if path == "" {
		path = args[0] + ".svg"
	}

	svg := export.RegionToSVG(m, out, svgSize)
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
