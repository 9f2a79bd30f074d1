// Package bookalope is a client for the Bookalope document conversion
// service. It models the service's resource graph (profile, bookshelves,
// books, bookflows, formats, styles) and drives the multi-step conversion
// workflow over its REST API.
//
// # Architecture
//
// Every entity holds a reference to the Client that constructed it and
// translates its lifecycle methods into single HTTP requests:
//
//	Client → entity method → one request → response mutates the entity
//
// The Client performs no caching beyond an entity's own fields and never
// issues a request on its own; polling for conversion completion is the
// caller's job.
//
// # Usage
//
//	client, err := bookalope.NewClient("", token)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	book, err := client.CreateBook(ctx, "My Book")
//	if err != nil {
//		log.Fatal(err)
//	}
//	flow := book.Bookflows[0]
//
//	if err := flow.SetDocument(ctx, "manuscript.docx", content, nil); err != nil {
//		log.Fatal(err)
//	}
//
//	// Re-fetch until the server finishes its structural analysis.
//	for flow.Step == bookalope.StepProcessing {
//		time.Sleep(5 * time.Second)
//		if err := flow.Update(ctx); err != nil {
//			log.Fatal(err)
//		}
//	}
//
//	if err := flow.Convert(ctx, "epub", ""); err != nil {
//		log.Fatal(err)
//	}
//
// # Workflow steps
//
// A bookflow moves through coarse-grained steps: "upload" (waiting for a
// document), "processing" (structural analysis running), then "convert"
// (ready for output requests) or "processing_failed". Operations check the
// local step before issuing a request; uploading a second document or
// adding images before the flow reaches the convert step fails without
// touching the network. Note that the local step is a client-side hint —
// SetDocument sets it to "processing" optimistically, and it is
// authoritative only after Update.
//
// # Errors
//
// All failures are reported as *Error values carrying a descriptive
// message. The library issues at most one request per call and performs no
// retries; retry policy belongs to the caller.
package bookalope
