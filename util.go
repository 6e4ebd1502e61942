package huffman

func bytesForBits(n int) int {
	return (n + 7) >> 3
}

func bitMask(i int) byte {
	return 0x80 >> uint(i&7)
}
