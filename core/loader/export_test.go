package loader

var Decompressor = decompressor
