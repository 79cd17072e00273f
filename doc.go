// Package tabfile reads tab-separated (or otherwise delimited) text files
// line by line.
//
// Each surviving line is returned as a [Record] which holds the original
// line and gives access to the individual fields of that line without
// re-scanning or copying them.
//
//	tf, err := tabfile.Open("data.tsv")
//	if err != nil {
//		// handle the open failure
//	}
//	it := tf.Separator('\t').SkipLines(1).Records()
//	defer it.Close()
//	for {
//		rec, err := it.Next()
//		if err == io.EOF {
//			break
//		}
//		if err != nil {
//			// a read failed; the iterator ends after the first error
//			break
//		}
//		fmt.Println(rec.Fields())
//	}
//
// A Tabfile supports the builder pattern: tune the separator, comment
// character, header skip count and blank line policy before calling
// [Tabfile.Records]. Records consumes the handle, so tuning is no longer
// possible once iteration has begun.
//
// There is no quoting and no escaping: every byte sequence that can be read
// is a valid record. Lines are split on '\n', with "\r\n" and a lone '\r'
// honored the same way.
package tabfile
