//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package operations

import (
	"errors"
	"fmt"
)

var (
	// ErrContractViolation indicates that Apply or Undo was called out of turn.
	ErrContractViolation = errors.New("contract violation")

	// ErrMutationReleased indicates that a mutation was used after Release.
	ErrMutationReleased = errors.New("mutation released")
)

// A ContractViolation reports an Apply or Undo call made while the tiles were
// in the wrong place. The mutation is left unchanged.
type ContractViolation struct {
	Text  string // mutation label
	Op    string // "add" or "remove"
	State State  // state at the time of the call
}

func (e *ContractViolation) Error() string {
	return fmt.Sprintf("%s: %s: cannot %s tiles while they are %s", ErrContractViolation, e.Text, e.Op, e.State)
}

func (e *ContractViolation) Is(target error) bool {
	return target == ErrContractViolation
}

// A ContainerError reports a failure of the tileset itself. The mutation is
// left unchanged and may be retried or released.
type ContainerError struct {
	Text string
	Op   string
	Err  error
}

func (e *ContainerError) Error() string {
	return fmt.Sprintf("%s: %s tiles: %v", e.Text, e.Op, e.Err)
}

func (e *ContainerError) Unwrap() error {
	return e.Err
}
