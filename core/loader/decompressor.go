package loader

// decompressor defines L(s), which inflates an LZ-string Base64 payload in the
// browser. It reads only what lzstring.CompressToBase64 writes.
const decompressor = `function L(s){var k="ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/",f=String.fromCharCode,i=0,m=0,v=0,z=4,n=3,d=[0,1,2],o,w,e,c;function b(x){for(var r=0,p=0;p<x;p++){if(!m){if(i>=s.length)throw Error("truncated");v=k.indexOf(s.charAt(i++));m=32}r|=(v&m?1:0)<<p;m>>=1}return r}function t(){if(!--z){z=1<<n;n++}}c=b(2);if(c==2)return"";w=f(b(c?16:8));d.push(w);o=[w];for(;;){c=b(n);if(c==2)return o.join("");if(c<2){d.push(f(b(c?16:8)));c=d.length-1;t()}e=c<d.length?d[c]:w+w.charAt(0);o.push(e);d.push(w+e.charAt(0));t();w=e}}`
