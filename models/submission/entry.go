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

package submission

import (
	"time"
)

// State is the state of a transaction in the construction flow.
type State string

// States of the construction flow. A transaction moves from built over
// signed to submitted, and ends up either confirmed or timed out. A timed
// out transaction can still be confirmed later on.
const (
	StateBuilt     State = "built"
	StateSigned    State = "signed"
	StateSubmitted State = "submitted"
	StateConfirmed State = "confirmed"
	StateTimedOut  State = "timed_out"
)

var transitions = map[State][]State{
	StateBuilt:     {StateSigned},
	StateSigned:    {StateSubmitted},
	StateSubmitted: {StateConfirmed, StateTimedOut},
	StateTimedOut:  {StateConfirmed},
}

// CanTransition returns whether a transaction can move from one state to the
// other.
func (s State) CanTransition(to State) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Final returns whether the outcome of the transaction is known.
func (s State) Final() bool {
	return s == StateConfirmed
}

// Entry is the journal record of a transaction in the construction flow.
type Entry struct {
	TransactionID string    `cbor:"1,keyasint"`
	Sender        string    `cbor:"2,keyasint"`
	State         State     `cbor:"3,keyasint"`
	Unsigned      string    `cbor:"4,keyasint,omitempty"`
	Signed        string    `cbor:"5,keyasint,omitempty"`
	Status        string    `cbor:"6,keyasint,omitempty"`
	Error         string    `cbor:"7,keyasint,omitempty"`
	Updated       time.Time `cbor:"8,keyasint"`
}
