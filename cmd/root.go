package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/golangdaddy/roadster/log"
	driveCmd "github.com/golangdaddy/roadster/pkg/cmd/drive"
	profileCmd "github.com/golangdaddy/roadster/pkg/cmd/profile"
	snapshotCmd "github.com/golangdaddy/roadster/pkg/cmd/snapshot"
	"github.com/golangdaddy/roadster/pkg/config"
)

const envPrefix = "ROADSTER"

var cfgFile string

// rootCmd drives the road when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "roadster",
	Short:        "Pseudo-3D endless highway",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := log.Init(config.Current.LogLevel, config.Current.LogFormat); err != nil {
			return err
		}
		return config.Current.Validate()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return driveCmd.Run(config.Current)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.roadster.yml)")

	d := config.Default()
	f := rootCmd.PersistentFlags()
	f.IntVar(&config.Current.ScreenWidth, "screen-width", d.ScreenWidth,
		"screen width in pixels")
	f.IntVar(&config.Current.ScreenHeight, "screen-height", d.ScreenHeight,
		"screen height in pixels")
	f.Float64Var(&config.Current.RoadWidth, "road-width", d.RoadWidth,
		"half width of the road in world units")
	f.Float64Var(&config.Current.SegmentLength, "segment-length", d.SegmentLength,
		"world length of one segment")
	f.IntVar(&config.Current.SegmentCount, "segment-count", d.SegmentCount,
		"number of segments in one lap")
	f.Float64Var(&config.Current.CameraDepth, "camera-depth", d.CameraDepth,
		"depth constant of the perspective projection")
	f.Float64Var(&config.Current.CameraHeight, "camera-height", d.CameraHeight,
		"eye height above the road")
	f.IntVar(&config.Current.DrawDistance, "draw-distance", d.DrawDistance,
		"segments drawn ahead of the camera")
	f.Float64Var(&config.Current.RumbleScale, "rumble-scale", d.RumbleScale,
		"rumble strip width relative to the road")
	f.Float64Var(&config.Current.BaseSpeed, "base-speed", d.BaseSpeed,
		"distance per tick with the throttle held")
	f.Float64Var(&config.Current.BoostMultiplier, "boost", d.BoostMultiplier,
		"speed multiplier while boosting")
	f.Float64Var(&config.Current.SteerStep, "steer-step", d.SteerStep,
		"lateral offset change per tick of steering")
	f.Float64Var(&config.Current.Centrifugal, "centrifugal", d.Centrifugal,
		"strength of the outward push on curves")
	f.StringVar(&config.Current.LogLevel, "log-level", d.LogLevel,
		"controls the log level (debug, info, warn, error, fatal)")
	f.StringVar(&config.Current.LogFormat, "log-format", d.LogFormat,
		"controls the log output format (json, text)")

	rootCmd.AddCommand(driveCmd.NewDriveCmd())
	rootCmd.AddCommand(snapshotCmd.NewSnapshotCmd())
	rootCmd.AddCommand(profileCmd.NewProfileCmd())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".roadster" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".roadster")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	bindFlags(rootCmd, viper.GetViper())
	for _, cmd := range rootCmd.Commands() {
		bindFlags(cmd, viper.GetViper())
	}
}

// Bind each cobra flag to its associated viper configuration
// (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Environment variables can't have dashes in them, so bind them to their
		// equivalent keys with underscores, e.g. --draw-distance to ROADSTER_DRAW_DISTANCE
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name,
				fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not bind env var %s: %v", f.Name, err)
			}
		}
		// Apply the viper config value to the flag when the flag is not set and viper
		// has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not set flag value for %s: %v", f.Name, err)
			}
		}
	})
}
