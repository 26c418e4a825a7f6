// Copyright 2015 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package triple holds the data model shared by the index, planner and
// executor: dense resource identifiers, the tagged variable/resource term,
// triple patterns, partial solutions and the eight pattern shapes.
package triple

// Resource is a dense, non-negative identifier assigned to a resource
// string on first sight. InvalidResource is reserved as a sentinel and is
// never returned by a dictionary encode.
type Resource int64

// InvalidResource is never a valid encoding of a resource string.
const InvalidResource Resource = -1
