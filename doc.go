/*
go-facetag gives every face in a live video stream a persistent, human
readable label.  A face keeps its label from frame to frame while it stays in
view, the label is retired shortly after the face leaves, and a newly
appearing face is given a fresh label.

Identity tracking lives in the tracker subpackage and has no dependency on
OpenCV.  Face detection (detect) and drawing (render) are built on GoCV, and
a Session ties them together in a capture, detect, reconcile, render and
display loop.

See the facetag command in cmd/facetag for a webcam viewer and an MJPEG
streaming server.
*/
package facetag
