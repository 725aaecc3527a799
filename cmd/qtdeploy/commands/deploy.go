package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/qtdeploy/internal/core/domain"
)

// deployFlags collects the deploy command's flag values before they are
// turned into a request.
type deployFlags struct {
	binaryPath      string
	outputPath      string
	qmlDirs         []string
	qtPath          string
	desktopFile     string
	iconFile        string
	appRunFile      string
	extraLibDirs    []string
	bundleNonQtLibs bool
	bundleAll       bool
	noStrip         bool
	alwaysOverwrite bool
	verbose         bool
}

func (f *deployFlags) request() domain.DeployRequest {
	mode := domain.BundleDefault
	if f.bundleNonQtLibs {
		mode = domain.BundleAllButCore
	}
	if f.bundleAll {
		mode = domain.BundleEverything
	}

	return domain.DeployRequest{
		BinaryPath:      f.binaryPath,
		AppDir:          f.outputPath,
		QMLDirs:         f.qmlDirs,
		QtPath:          f.qtPath,
		DesktopFile:     f.desktopFile,
		IconFile:        f.iconFile,
		AppRunFile:      f.appRunFile,
		ExtraLibs:       f.extraLibDirs,
		Mode:            mode,
		Strip:           !f.noStrip,
		AlwaysOverwrite: f.alwaysOverwrite,
	}
}

func (c *CLI) newDeployCmd() *cobra.Command {
	flags := &deployFlags{}

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy a binary and its shared libraries into an AppDir",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.applyVerbosity(flags)
			req := flags.request()
			req.ConfigFile = c.configFile
			_, err := c.components.App.Deploy(cmd.Context(), req)
			return err
		},
	}
	bindDeployFlags(cmd, flags)
	return cmd
}

// applyVerbosity lowers the log threshold when the adapter supports it.
func (c *CLI) applyVerbosity(flags *deployFlags) {
	if !flags.verbose {
		return
	}
	if lv, ok := c.components.Logger.(interface{ SetVerbose(bool) }); ok {
		lv.SetVerbose(true)
	}
}

func bindDeployFlags(cmd *cobra.Command, flags *deployFlags) {
	cmd.Flags().StringVarP(&flags.binaryPath, "binary-path", "b", "", "Executable to deploy")
	cmd.Flags().StringVarP(&flags.outputPath, "output-path", "o", "", "AppDir root to produce (default \"AppDir\")")
	cmd.Flags().StringArrayVar(&flags.qmlDirs, "qml-dir", nil, "Source tree scanned for QML imports (repeatable)")
	cmd.Flags().StringVar(&flags.qtPath, "qt-path", "", "Framework install root (overrides discovery)")
	cmd.Flags().StringVar(&flags.desktopFile, "desktop-file", "", "Desktop file copied into the bundle root")
	cmd.Flags().StringVar(&flags.iconFile, "icon", "", "Icon copied into the bundle root and as .DirIcon")
	cmd.Flags().StringVar(&flags.appRunFile, "apprun-file", "", "Launcher script to use instead of the generated one")
	cmd.Flags().StringArrayVar(&flags.extraLibDirs, "extra-lib-dir", nil, "Extra directory searched for libraries (repeatable)")
	cmd.Flags().BoolVar(&flags.bundleNonQtLibs, "bundle-non-qt-libs", false, "Bundle every library except the core system set")
	cmd.Flags().BoolVar(&flags.bundleAll, "bundle-everything", false, "Bundle every resolved library")
	cmd.Flags().BoolVar(&flags.noStrip, "no-strip", false, "Keep symbol tables on deployed binaries")
	cmd.Flags().BoolVar(&flags.alwaysOverwrite, "always-overwrite", false, "Replace files already present in the AppDir")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
}
