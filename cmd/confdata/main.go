// cmd/confdata/main.go
package main

import (
	"fmt"
	"os"

	"github.com/tamzrod/jesdtx/internal/confdata"
	"github.com/tamzrod/jesdtx/internal/config"
	"github.com/tamzrod/jesdtx/internal/core"
	"github.com/tamzrod/jesdtx/internal/logging"
)

// confdata prints the ILAS configuration descriptor of every lane and the
// derived link clocks for a config file. Nothing is simulated.
func main() {
	log := logging.New("confdata", "")

	if len(os.Args) < 2 {
		log.Fatal().Msg("usage: confdata <config.yaml|config.toml>")
	}

	cfg, err := config.Load(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatal().Err(err).Msg("config validation failed")
	}

	ls, err := core.SettingsFrom(cfg.Link)
	if err != nil {
		log.Fatal().Err(err).Msg("link settings rejected")
	}

	clk := ls.Clocks()
	fmt.Printf("sample_clock  %.0f Hz\n", clk.Sample)
	fmt.Printf("frame_clock   %.0f Hz\n", clk.Frame)
	fmt.Printf("lmf_clock     %.0f Hz\n", clk.LMF)
	fmt.Printf("line_rate     %.0f bit/s\n", clk.LineRate)
	fmt.Println()

	for lid := 0; lid < ls.Lanes(); lid++ {
		o := ls.ConfigurationData(lid)

		fmt.Printf("lane %d:", lid)
		for _, b := range o {
			fmt.Printf(" %02x", b)
		}
		fmt.Printf("  lid=%d chksum=%02x valid=%t\n", o.Field(confdata.LID), o[confdata.ChecksumOctet], o.Valid())
	}
}
