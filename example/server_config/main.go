// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/z5labs/construct"
	"github.com/z5labs/construct/configure/source"
	"github.com/z5labs/construct/path"

	"github.com/spf13/cobra"
)

type Config struct {
	Addr    string        `config:"addr"`
	Port    int           `config:"port"`
	Timeout time.Duration `config:"timeout"`
}

var configPort = path.New(
	func(c Config) int { return c.Port },
	func(c Config, v int) Config {
		c.Port = v
		return c
	},
)

var configAddr = path.New(
	func(c Config) string { return c.Addr },
	func(c Config, v string) Config {
		c.Addr = v
		return c
	},
)

func main() {
	var filename string
	var addr string
	var port int

	cmd := &cobra.Command{
		Use: "server_config",
		RunE: func(cmd *cobra.Command, args []string) error {
			b := construct.FromValue(Config{
				Addr:    "127.0.0.1",
				Timeout: 30 * time.Second,
			})

			if filename != "" {
				f, err := os.Open(filename)
				if err != nil {
					return err
				}

				batch, err := source.Batch[Config](source.FromYaml(f))
				if err != nil {
					return err
				}
				b = b.With(batch)
			}

			// flags override anything read from the file
			b = construct.At(b, configPort).SetIf(cmd.Flags().Changed("port"), port)
			b = construct.At(b, configAddr).SetIf(cmd.Flags().Changed("addr"), addr)

			fmt.Printf("%+v\n", b.Build())
			return nil
		},
	}
	cmd.Flags().StringVar(&filename, "config", "", "YAML file to read values from")
	cmd.Flags().IntVar(&port, "port", 8080, "port to listen on")
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1", "address to listen on")

	err := cmd.Execute()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
