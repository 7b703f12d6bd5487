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

package failure

import (
	"fmt"
)

// HistoricalBalance is the error for a balance request at a checkpoint that
// exists, but is too far behind the latest checkpoint to be served from live
// state.
type HistoricalBalance struct {
	Description Description
	Index       uint64
	Latest      uint64
}

// Error implements the error interface.
func (i HistoricalBalance) Error() string {
	return fmt.Sprintf("historical balance unavailable (index: %d, latest: %d): %s", i.Index, i.Latest, i.Description)
}
