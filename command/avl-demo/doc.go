// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avl-demo - build an AVL tree from a configured scenario
//
// The configuration file is Lua (see avl-demo.conf.sample).  The
// scenario is printed to standard output, then the optional stress
// trials are run.  With --watch the program stays running and repeats
// everything whenever the configuration file is written.
package main
