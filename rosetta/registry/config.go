// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package registry

// DefaultConfig is the default configuration of the currency registry.
var DefaultConfig = Config{
	CacheSize: 10_000_000, // ~10 MB
}

// Config contains the configuration parameters of the currency registry.
type Config struct {
	CacheSize uint64
}

// WithCacheSize sets the maximum size of the coin metadata cache in bytes.
func WithCacheSize(size uint64) func(*Config) {
	return func(cfg *Config) {
		cfg.CacheSize = size
	}
}
