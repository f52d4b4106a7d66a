/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package stream

// Shutdown applies the provider shutdown control token and drives the
// closing exchange to completion. Already shut down streams return success;
// a shutdown already in progress is resumed.
func (o *stm) Shutdown() error {
	switch {
	case o.st.stg == stageShutdown:
		return nil

	case o.st.stg == stageInitializing && o.st.shuttingDown:
		// resume the exchange

	default:
		if sts := o.ses.ApplyShutdown(); !sts.IsOK() {
			return ErrorShutdown.Error(sts.Err())
		}

		o.st = state{
			stg:          stageInitializing,
			moreCalls:    true,
			shuttingDown: true,
		}
		o.needsRead = false
		o.logDebug("shutdown control token applied")
	}

	_, err := o.initialize()

	return err
}
