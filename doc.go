// Copyright (c) 2017, 2018 Alexey Tourbin
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package fp64set implements a bucketized cuckoo set of 64-bit fingerprints.
//
// It is specialized for the case where the stored items are themselves
// uniformly distributed 64-bit hashes: given such a fingerprint, Has reports
// membership with no false negatives and a false-positive probability on the
// order of 2^-64 per colliding pair. Add, Del and Next round out insertion,
// deletion and iteration; the set grows itself (widening buckets from 2 to 3
// to 4 slots, then doubling the bucket count) as load increases.
//
// The set is not safe for concurrent use. Callers are responsible for
// externally synchronizing access, and for pre-mixing any non-uniform input
// before treating it as a fingerprint (see the fpmix subpackage for two
// ready-made mixers).
package fp64set
