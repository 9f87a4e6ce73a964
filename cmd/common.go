/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/valpere/logreturn/internal"
)

// parseRange reads a selection written as "LINE:COL-LINE:COL" with 1-based
// lines and columns and an exclusive end, and returns it 0-based.
func parseRange(s string) (internal.Range, error) {
	var sl, sc, el, ec int
	var rest string
	n, _ := fmt.Sscanf(s+" end", "%d:%d-%d:%d %s", &sl, &sc, &el, &ec, &rest)
	if n != 5 || rest != "end" {
		return internal.Range{}, fmt.Errorf("invalid range %q: want LINE:COL-LINE:COL", s)
	}
	if sl < 1 || sc < 1 || el < 1 || ec < 1 {
		return internal.Range{}, fmt.Errorf("invalid range %q: lines and columns start at 1", s)
	}

	r := internal.Range{
		Start: internal.Position{Line: sl - 1, Character: sc - 1},
		End:   internal.Position{Line: el - 1, Character: ec - 1},
	}
	if r.End.Before(r.Start) {
		return internal.Range{}, fmt.Errorf("invalid range %q: end is before start", s)
	}
	return r, nil
}
