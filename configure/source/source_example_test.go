// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"fmt"
	"strings"

	"github.com/z5labs/construct/configure"
)

func ExampleBatch() {
	type server struct {
		Addr string `config:"addr"`
		Port int    `config:"port"`
	}

	transform, err := Batch[server](
		FromYaml(strings.NewReader("addr: 0.0.0.0\nport: 8080")),
		Map{"port": 9090},
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	srv := configure.Of(transform).Configure(server{})
	fmt.Println(srv)

	// Output:
	// {0.0.0.0 9090}
}
