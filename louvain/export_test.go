package louvain

// BridgedTriangles exposes the two-triangle fixture to the external tests.
var BridgedTriangles = twoTriangles
