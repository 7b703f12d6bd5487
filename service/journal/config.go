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

package journal

import (
	"github.com/optakt/sui-rosetta/codec/zbor"
)

// Codec turns journal values into bytes and back.
type Codec interface {
	Marshal(value interface{}) ([]byte, error)
	Unmarshal(data []byte, value interface{}) error
}

// Config holds the optional parameters of a journal.
type Config struct {
	Codec Codec
}

// DefaultConfig stores entries as compressed CBOR.
var DefaultConfig = Config{
	Codec: zbor.NewCodec(),
}

// WithCodec sets the codec used to store journal entries.
func WithCodec(codec Codec) func(*Config) {
	return func(cfg *Config) {
		cfg.Codec = codec
	}
}
