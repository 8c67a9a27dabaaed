// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ProcessError("already initialised")
	ErrConfigurationNotTable  = InvalidError("configuration did not return a table")
	ErrDeleteFailed           = ProcessError("delete of a present key failed")
	ErrDuplicateAccepted      = ProcessError("duplicate key accepted")
	ErrDuplicateKey           = ExistsError("duplicate key")
	ErrIncorrectHeight        = InvalidError("node height is incorrect")
	ErrInvalidDirectory       = InvalidError("path is not a valid directory")
	ErrInvalidKeyCount        = InvalidError("key count must be positive")
	ErrInvalidLoggerChannel   = ProcessError("invalid logger channel")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrInvalidTrialCount      = InvalidError("trial count must be positive")
	ErrInvalidWorkerCount     = InvalidError("worker count must be positive")
	ErrMissingConfigFile      = InvalidError("configuration file is required")
	ErrNeighbourMismatch      = ProcessError("neighbour does not match sorted order")
	ErrNodeNotInTree          = NotFoundError("node is not in tree")
	ErrNotFoundConfigFile     = NotFoundError("configuration file is not found")
	ErrNotPlainFileName       = InvalidError("file name must not contain a path")
	ErrRemovedKeyStillPresent = ProcessError("removed key still present")
	ErrSearchMismatch         = ProcessError("search did not return the expected key")
	ErrStressTrialFailed      = ProcessError("stress trial failed")
	ErrTreeCountMismatch      = ProcessError("tree count does not match")
	ErrUnbalancedNode         = InvalidError("node is not balanced")
	ErrUnorderedKeys          = InvalidError("keys are not in order")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, wrapped errors are unwrapped
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
