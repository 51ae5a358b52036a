/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package config

import "runtime"

// searchConfiguration holds the tunables the parallel search variants read.
type searchConfiguration struct {
	// NumThreads is the size of the process-wide worker pool. set_num_threads
	// overrides this at runtime; the config value is only the initial default.
	NumThreads int

	// SerialDepth is the remaining-depth threshold at and below which nodes
	// are searched sequentially instead of being submitted to the pool.
	SerialDepth int

	// UsePVS and UseYBWC are loaded from the config file but no search
	// function reads them: every variant is called by name and always runs.
	UsePVS bool

	// UseYBWC: see UsePVS.
	UseYBWC bool
}

// sets defaults which may be overwritten by a config file
func init() {
	Settings.Search.NumThreads = runtime.NumCPU()
	Settings.Search.SerialDepth = 3
	Settings.Search.UsePVS = true
	Settings.Search.UseYBWC = true
}
