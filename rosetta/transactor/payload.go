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

package transactor

import (
	"encoding/base64"
	"fmt"

	"github.com/optakt/sui-rosetta/rosetta/failure"
)

// payload is the envelope handed to clients between construction steps. It
// carries the ledger's transaction bytes together with what is needed to
// parse the transfer back without asking the ledger.
type payload struct {
	TxBytes    []byte      `cbor:"1,keyasint"`
	Sender     string      `cbor:"2,keyasint"`
	CoinType   string      `cbor:"3,keyasint"`
	Recipients []recipient `cbor:"4,keyasint"`
	GasBudget  uint64      `cbor:"5,keyasint"`
	GasPrice   uint64      `cbor:"6,keyasint"`
	Signatures [][]byte    `cbor:"7,keyasint,omitempty"`
}

type recipient struct {
	Address string `cbor:"1,keyasint"`
	Amount  string `cbor:"2,keyasint"`
}

func (t *Transactor) encodePayload(p payload) (string, error) {

	data, err := t.codec.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("could not marshal payload: %w", err)
	}

	return base64.StdEncoding.EncodeToString(data), nil
}

func (t *Transactor) decodePayload(encoded string) (payload, error) {

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return payload{}, failure.InvalidPayload{
			Description: failure.NewDescription(payloadEncoding, failure.WithErr(err)),
		}
	}

	var p payload
	err = t.codec.Unmarshal(data, &p)
	if err != nil {
		return payload{}, failure.InvalidPayload{
			Description: failure.NewDescription(payloadDecoding, failure.WithErr(err)),
		}
	}

	if len(p.TxBytes) == 0 || p.Sender == "" {
		return payload{}, failure.InvalidPayload{
			Description: failure.NewDescription(payloadDecoding,
				failure.WithInt("tx_bytes", len(p.TxBytes)),
				failure.WithString("sender", p.Sender),
			),
		}
	}

	return p, nil
}
